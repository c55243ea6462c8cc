package user

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

var ErrMissingCredentials = errors.New("please enter both email and password")

// Validate checks that both credentials were typed. Any non-empty pair is accepted.
func (cr *Credentials) Validate(validate *validator.Validate) error {
	cr.Email = core.CleanString(cr.Email, true /* lower */)

	if err := validate.Struct(cr); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return core.NewNoticeError(ErrMissingCredentials, "Missing Information", "Please enter both email and password")
		}
		return err
	}
	return nil
}

func (up *UpdateProfile) clean() {
	up.Name = core.CleanString(up.Name)
	up.Email = core.CleanString(up.Email, true /* lower */)
	up.Avatar = core.CleanString(up.Avatar)
}
