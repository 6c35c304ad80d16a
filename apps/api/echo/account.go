package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/account"
	"github.com/curaedu/cura/core/auth"
)

type accountApi struct {
	svc      *account.Service
	conf     *core.Config
	validate *validator.Validate
}

func registerAccountAPI(g *echo.Group, token echo.MiddlewareFunc, opts *Options) {
	api := accountApi{
		svc:      opts.AccountSvc,
		conf:     opts.Conf,
		validate: opts.Validate,
	}

	ag := g.Group("/auth")

	// un-authed endpoints
	ag.POST("/signup", api.signup)
	ag.POST("/login", api.login)

	// authed endpoints
	ag.GET("/me", api.me, token)
}

func (api *accountApi) signup(ctx echo.Context) error {
	var data account.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.SignUp(data)
	if err != nil {
		return errors.Wrap(err, "signing user up")
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *accountApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(data.Email, data.Password)
	if err != nil {
		if errors.Cause(err) == account.ErrNotFound {
			return core.NewAuthenticationError("invalid credentials")
		}
		return errors.Wrap(err, "authenticating")
	}

	claims := auth.NewUserClaims(usr.ID, usr.Email, usr.Role, usr.Name, api.conf)
	token, err := auth.GenerateToken(claims, api.conf.SecretKey)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *accountApi) me(ctx echo.Context) error {
	principal, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	usr, err := api.svc.GetByID(principal.ID)
	if err != nil {
		if errors.Cause(err) == account.ErrNotFound {
			return core.NewNotFoundError("user")
		}
		return errors.Wrap(err, "finding user by ID")
	}
	return ctx.JSON(http.StatusOK, usr)
}
