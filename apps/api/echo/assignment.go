package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core/assignment"
	"github.com/curaedu/cura/core/auth"
)

type assignmentApi struct {
	svc *assignment.Service
}

func registerAssignmentAPI(g *echo.Group, token echo.MiddlewareFunc, opts *Options) {
	api := assignmentApi{svc: opts.AssignmentSvc}

	ag := g.Group("/assignments", token, roleMiddleware(auth.TeacherOnly...))
	ag.GET("/mine", api.queryMine)
	ag.POST("/:studentID", api.assign)
	ag.DELETE("/:studentID", api.unassign)
}

func (api *assignmentApi) assign(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	a, err := api.svc.Assign(principal.ID, ctx.Param("studentID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *assignmentApi) queryMine(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	as, err := api.svc.QueryForTeacher(principal.ID)
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, as)
}

func (api *assignmentApi) unassign(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Unassign(principal.ID, ctx.Param("studentID")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
