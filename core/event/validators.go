package event

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

var (
	ErrMissingFields = errors.New("please fill in all fields")

	categoryTag  = "eventcategory"
	categoryText = "invalid category"
)

// InitValidators registers the event validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(validate, translator, categoryTag, categoryText)
}

// Validate trims the proposal then checks it. Any missing field fails with a single "fill all fields" notice.
func (ne *NewEvent) Validate(validate *validator.Validate, translator ut.Translator) error {
	ne.Title = core.CleanString(ne.Title)
	ne.Category = core.CleanString(ne.Category, true /* lower */)
	ne.Description = core.CleanString(ne.Description)
	ne.Date = core.CleanString(ne.Date)
	ne.Location = core.CleanString(ne.Location)

	err := validate.Struct(ne)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	flds := core.FieldErrors(vErrs, translator)
	if core.HasTag(vErrs, "required") {
		return core.NewNoticeError(ErrMissingFields, "Missing Information", "Please fill in all fields", flds...)
	}
	return core.NewValidationError(errors.New("invalid event"), flds...)
}

// Custom Validators

func categoryValidation(fl validator.FieldLevel) bool {
	val := Category(fl.Field().String())
	for _, c := range Categories {
		if c == val {
			return true
		}
	}
	return false
}
