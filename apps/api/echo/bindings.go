package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/values"
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	FollowUpResponse struct {
		Answer string `json:"answer"`
	}

	RespondResponse struct {
		Response   values.Response `json:"response"`
		Reflection string          `json:"reflection"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}
