package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core/auth"
	"github.com/curaedu/cura/core/feedback"
)

type feedbackApi struct {
	svc      *feedback.Service
	validate *validator.Validate
}

func registerFeedbackAPI(g *echo.Group, token echo.MiddlewareFunc, opts *Options) {
	api := feedbackApi{
		svc:      opts.FeedbackSvc,
		validate: opts.Validate,
	}

	fg := g.Group("/feedback", token)
	fg.POST("/generate", api.generate, roleMiddleware(auth.TeacherOnly...))
	fg.GET("/submissions/:id", api.queryBySubmission)
	fg.GET("/mine", api.queryMine, roleMiddleware(auth.StudentOnly...))
	fg.POST("/follow-up", api.followUp)
}

func (api *feedbackApi) generate(ctx echo.Context) error {
	var data feedback.NewFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFeedback")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	fb, err := api.svc.Generate(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, fb)
}

func (api *feedbackApi) queryBySubmission(ctx echo.Context) error {
	fbs, err := api.svc.ForSubmission(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying feedback by submission")
	}
	return ctx.JSON(http.StatusOK, fbs)
}

func (api *feedbackApi) queryMine(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	fbs, err := api.svc.ForStudent(principal.ID)
	if err != nil {
		return errors.Wrap(err, "querying own feedback")
	}
	return ctx.JSON(http.StatusOK, fbs)
}

func (api *feedbackApi) followUp(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	var data feedback.FollowUp
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to FollowUp")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	answer, err := api.svc.FollowUp(ctx.Request().Context(), principal, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, FollowUpResponse{Answer: answer})
}
