package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/account"
	"github.com/curaedu/cura/core/assignment"
	"github.com/curaedu/cura/core/auth"
	"github.com/curaedu/cura/core/feedback"
	"github.com/curaedu/cura/core/submission"
	"github.com/curaedu/cura/core/values"
)

type (
	Options struct {
		Conf           *core.Config
		Logger         core.Logger
		DisableReqLogs bool

		// Shutdown receives a signal when an unrecoverable error asks the
		// app to stop. Optional; may be nil in tests.
		Shutdown chan os.Signal

		AccountSvc    *account.Service
		SubmissionSvc *submission.Service
		FeedbackSvc   *feedback.Service
		AssignmentSvc *assignment.Service
		ValuesSvc     *values.Service

		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	verifier := auth.NewVerifier(conf)
	token := tokenMiddleware(verifier)

	v1 := s.app.Group("/v1")
	registerAccountAPI(v1, token, s.opts)
	registerSubmissionAPI(v1, token, s.opts)
	registerFeedbackAPI(v1, token, s.opts)
	registerAssignmentAPI(v1, token, s.opts)
	registerValuesAPI(v1, token, s.opts)
}

// signalShutdown asks main to gracefully stop the app.
func (s *server) signalShutdown() {
	if s.opts.Shutdown == nil {
		return
	}
	select {
	case s.opts.Shutdown <- syscall.SIGTERM:
	default:
	}
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Conf.Server.Address())
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Cura API!")
}
