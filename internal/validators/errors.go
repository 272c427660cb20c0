package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")
	ErrRequiredField = errors.New("required field is missing")
	ErrInvalidField  = errors.New("invalid field value")
)
