package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/curaedu/cura/apps/api/echo"
	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/account"
	"github.com/curaedu/cura/core/assignment"
	"github.com/curaedu/cura/core/feedback"
	"github.com/curaedu/cura/core/submission"
	"github.com/curaedu/cura/core/values"
	aisvc "github.com/curaedu/cura/services/ai"
	emailsvc "github.com/curaedu/cura/services/email"
	sendgridmail "github.com/curaedu/cura/services/email/sendgrid"
	extractsvc "github.com/curaedu/cura/services/extractor"
	logsvc "github.com/curaedu/cura/services/logger"
	"github.com/curaedu/cura/storage/database"
	sqlxrepos "github.com/curaedu/cura/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up DB
	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error("closing database", err)
		}
	}()
	dbx := sqlx.NewDb(db, conf.Database.Engine)

	// set up repos
	usrRepo := sqlxrepos.NewUserRepository(dbx)
	subRepo := sqlxrepos.NewSubmissionRepository(dbx)
	fbRepo := sqlxrepos.NewFeedbackRepository(dbx)
	assignRepo := sqlxrepos.NewAssignmentRepository(dbx)
	valRepo := sqlxrepos.NewValuesRepository(dbx)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = sendgridmail.NewService(conf, logger)
	}
	ai := aisvc.NewOpenAIService(conf)

	accountSvc := account.NewService(usrRepo, mailSvc, conf)
	submissionSvc := submission.NewService(subRepo, extractsvc.NewService(), conf)
	feedbackSvc := feedback.NewService(fbRepo, subRepo, ai)
	assignmentSvc := assignment.NewService(assignRepo, usrRepo)
	valuesSvc := values.NewService(valRepo, ai)

	validate, translator := core.NewValidator()

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	server := echoapi.NewServer(&echoapi.Options{
		Conf:          conf,
		Logger:        logger,
		Shutdown:      shutdown,
		AccountSvc:    accountSvc,
		SubmissionSvc: submissionSvc,
		FeedbackSvc:   feedbackSvc,
		AssignmentSvc: assignmentSvc,
		ValuesSvc:     valuesSvc,
		Validate:      validate,
		Translator:    translator,
	})

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-serverErrors:
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-shutdown:
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err = server.Stop(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		}
	}
}

func setUpDB(conf *core.Config) (*sql.DB, error) {
	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}
	if err = database.Ping(db); err != nil {
		return nil, err
	}
	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
