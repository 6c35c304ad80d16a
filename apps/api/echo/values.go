package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core/auth"
	"github.com/curaedu/cura/core/values"
)

type valuesApi struct {
	svc      *values.Service
	validate *validator.Validate
}

func registerValuesAPI(g *echo.Group, token echo.MiddlewareFunc, opts *Options) {
	api := valuesApi{
		svc:      opts.ValuesSvc,
		validate: opts.Validate,
	}

	vg := g.Group("/values", token, roleMiddleware(auth.StudentOnly...))
	vg.GET("/next-statement", api.nextStatement)
	vg.POST("/respond", api.respond)
}

func (api *valuesApi) nextStatement(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	stmt, err := api.svc.NextFor(principal.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stmt)
}

func (api *valuesApi) respond(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	var data values.NewResponse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewResponse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	resp, reflection, err := api.svc.Respond(ctx.Request().Context(), principal.ID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, RespondResponse{Response: resp, Reflection: reflection})
}
