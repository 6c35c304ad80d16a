package core

// Logger is any service that can log app messages and report errors.
//
// expected args fmt: error, map[string]interface{}, account data...
// implementations may give some arg types a special treatment.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
