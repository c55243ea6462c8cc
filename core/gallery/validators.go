package gallery

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

var (
	ErrMissingPhoto = errors.New("please select a photo and add a caption")
	ErrNotAnImage   = errors.New("the selected file is not an image")
)

func (np *NewPhoto) Validate(validate *validator.Validate, translator ut.Translator) error {
	np.Caption = core.CleanString(np.Caption)

	err := validate.Struct(np)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	flds := core.FieldErrors(vErrs, translator)
	for i := range flds {
		if flds[i].Field == "file" {
			flds[i].Error = "please select a photo"
		}
	}
	return core.NewNoticeError(ErrMissingPhoto, "Missing Information", "Please select a photo and add a caption", flds...)
}
