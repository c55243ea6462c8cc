package core

import (
	"github.com/go-playground/validator/v10"
	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a client error. Notice, when set, is what the dashboard shows to the member.
type ValidationError struct {
	Err    error
	Fields []FieldError
	Notice *Notice
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

// NewNoticeError returns a ValidationError carrying a destructive Notice.
func NewNoticeError(err error, title, description string, flds ...FieldError) error {
	return &ValidationError{
		Err:    err,
		Fields: flds,
		Notice: &Notice{Title: title, Description: description, Variant: VariantDestructive},
	}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error {
	return err.Err
}

// FieldErrors translates validator errors into FieldErrors.
func FieldErrors(vErrs validator.ValidationErrors, translator ut.Translator) []FieldError {
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(translator)})
	}
	return flds
}

// OperationError is returned when a simulated operation fails. Outcome carries the failure notice.
type OperationError struct {
	Err     error
	Outcome Outcome
}

func (err OperationError) Error() string {
	return err.Outcome.Notice.Title + ": " + err.Err.Error()
}

func (err OperationError) Unwrap() error {
	return err.Err
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
