package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/curaedu/cura/core/auth"
)

var contextPrincipalKey = "principal"

// tokenMiddleware authenticates requests carrying a bearer credential and
// stores the resulting Principal on the request context.
func tokenMiddleware(verifier *auth.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return errTokenMissing
			}

			principal, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return err
			}
			ctx.Set(contextPrincipalKey, principal)
			return next(ctx)
		}
	}
}

// roleMiddleware restricts a route to principals holding one of the
// allowed roles.
func roleMiddleware(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := getContextPrincipal(ctx)
			if err != nil {
				return err
			}
			if err = auth.Authorize(principal, allowed...); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}

func getContextPrincipal(ctx echo.Context) (auth.Principal, error) {
	if p, ok := ctx.Get(contextPrincipalKey).(auth.Principal); ok {
		return p, nil
	}
	return auth.Principal{}, errUnauthorized
}
