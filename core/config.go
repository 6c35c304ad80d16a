package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env      string
		Debug    bool
		TestMode bool
		AppName  string
		Build    string

		SecretKey        []byte
		DefaultFromEmail string
		FrontendBaseURL  string

		SendgridAPIKey string
		RollbarToken   string

		Server   ServerConfig
		Database DatabaseConfig
		OpenAI   OpenAIConfig
		Upload   UploadConfig
	}

	ServerConfig struct {
		Host               string
		Port               string
		JWTIssuer          string
		JWTAudience        string
		JWTExpirationDelta time.Duration
		ShutdownTimeout    time.Duration
	}

	DatabaseConfig struct {
		Engine     string
		Host       string
		Port       string
		User       string
		Password   string
		Name       string
		DisableTLS bool
	}

	OpenAIConfig struct {
		APIKey string
		Model  string
	}

	UploadConfig struct {
		Dir     string
		MaxSize int64
	}
)

func (c ServerConfig) Address() string { return c.Host + ":" + c.Port }
func (c DatabaseConfig) Address() string { return c.Host + ":" + c.Port }

// NewConfig loads the app configuration from the environment.
// A config/.env.<env> file is loaded first if it exists; explicitly set
// environment variables always win (viper.AutomaticEnv).
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Cura")
	conf.SetDefault("secretKey", "+waf4pla#ij$y1z%f)85b&2!cm-p7nr_0qd^8ke9(x6os35guv")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("frontendBaseURL", "http://localhost:5173")
	conf.SetDefault("serverHost", "")
	conf.SetDefault("serverPort", "8000")
	conf.SetDefault("jwtIssuer", "cura")
	conf.SetDefault("jwtAudience", "authenticated")
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("shutdownTimeout", 5*time.Second)
	conf.SetDefault("dbEngine", "postgres")
	conf.SetDefault("dbHost", "localhost")
	conf.SetDefault("dbPort", "5432")
	conf.SetDefault("dbUser", "cura")
	conf.SetDefault("dbPassword", "")
	conf.SetDefault("dbName", "cura")
	conf.SetDefault("dbDisableTLS", true)
	conf.SetDefault("openaiModel", "gpt-4o-mini")
	conf.SetDefault("uploadDir", "uploads")
	conf.SetDefault("uploadMaxSize", 10<<20) // 10MB

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:              env,
		Debug:            conf.GetBool("debug"),
		TestMode:         env == "TEST",
		AppName:          conf.GetString("appName"),
		Build:            conf.GetString("build"),
		SecretKey:        []byte(conf.GetString("secretKey")),
		DefaultFromEmail: conf.GetString("defaultFromEmail"),
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		SendgridAPIKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:               conf.GetString("serverHost"),
			Port:               conf.GetString("serverPort"),
			JWTIssuer:          conf.GetString("jwtIssuer"),
			JWTAudience:        conf.GetString("jwtAudience"),
			JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
			ShutdownTimeout:    conf.GetDuration("shutdownTimeout"),
		},
		Database: DatabaseConfig{
			Engine:     conf.GetString("dbEngine"),
			Host:       conf.GetString("dbHost"),
			Port:       conf.GetString("dbPort"),
			User:       conf.GetString("dbUser"),
			Password:   conf.GetString("dbPassword"),
			Name:       conf.GetString("dbName"),
			DisableTLS: conf.GetBool("dbDisableTLS"),
		},
		OpenAI: OpenAIConfig{
			APIKey: conf.GetString("openaiApiKey"),
			Model:  conf.GetString("openaiModel"),
		},
		Upload: UploadConfig{
			Dir:     conf.GetString("uploadDir"),
			MaxSize: conf.GetInt64("uploadMaxSize"),
		},
	}
}

// Getwd returns the app's root directory.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd: %v", err)
	}
	return wd
}
