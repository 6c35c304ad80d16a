package echoapi

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/auth"
	"github.com/curaedu/cura/core/submission"
	extractsvc "github.com/curaedu/cura/services/extractor"
)

type submissionApi struct {
	svc     *submission.Service
	maxSize int64
}

func registerSubmissionAPI(g *echo.Group, token echo.MiddlewareFunc, opts *Options) {
	api := submissionApi{
		svc:     opts.SubmissionSvc,
		maxSize: opts.Conf.Upload.MaxSize,
	}

	ug := g.Group("/uploads", token)
	ug.POST("", api.upload)
	ug.GET("", api.queryAll, roleMiddleware(auth.TeacherOnly...))
	ug.GET("/mine", api.queryMine)

	tg := g.Group("/teacher", token, roleMiddleware(auth.TeacherOnly...))
	tg.GET("/submissions", api.queryWithStudent)
}

func (api *submissionApi) upload(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	fileHdr, err := ctx.FormFile("file")
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "file", Error: "a file is required"})
	}
	if fileHdr.Size > api.maxSize {
		return core.NewValidationError(nil, core.FieldError{Field: "file", Error: "file too large"})
	}

	file, err := fileHdr.Open()
	if err != nil {
		return errors.Wrap(err, "opening upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "reading upload")
	}

	sub, err := api.svc.Create(principal.ID, fileHdr.Filename, fileHdr.Header.Get(echo.HeaderContentType), data)
	if err != nil {
		if errors.Cause(err) == extractsvc.ErrUnsupportedType {
			return core.NewValidationError(nil, core.FieldError{Field: "file", Error: extractsvc.ErrUnsupportedType.Error()})
		}
		return errors.Wrap(err, "creating submission")
	}
	return ctx.JSON(http.StatusCreated, sub)
}

func (api *submissionApi) queryAll(ctx echo.Context) error {
	subs, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying submissions")
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *submissionApi) queryMine(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	subs, err := api.svc.QueryOwn(principal.ID)
	if err != nil {
		return errors.Wrap(err, "querying own submissions")
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *submissionApi) queryWithStudent(ctx echo.Context) error {
	subs, err := api.svc.QueryWithStudent()
	if err != nil {
		return errors.Wrap(err, "querying submissions with student")
	}
	return ctx.JSON(http.StatusOK, subs)
}
