// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-job-tracker/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They are the Go names of the validated struct fields.
const (
	FieldUserID   = "UserID"
	FieldLogin    = "Login"
	FieldPassword = "Password"
	FieldCompany  = "Company"
	FieldTitle    = "Title"
	FieldStatus   = "Status"
	FieldURL      = "URL"
	FieldName     = "Name"
	FieldEmail    = "Email"
	FieldStartsAt = "StartsAt"
	FieldEndsAt   = "EndsAt"
	FieldSource   = "Source"
	FieldContent  = "Content"
)

// ResourceValidator implements [Validator] for users, every tracked
// resource and cover letter generation requests. Both value and pointer
// forms are accepted.
type ResourceValidator struct {
	validate *validator.Validate
}

// NewResourceValidator constructs a ResourceValidator that reports fields
// by their JSON names.
func NewResourceValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &ResourceValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given only
// those are validated; a name that is not a field of obj yields
// [ErrUnknownField]. The first violation is returned.
func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	target, err := dereference(obj)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		return v.convert(v.validate.StructCtx(ctx, target))
	}

	typ := reflect.TypeOf(target)
	for _, f := range fields {
		if _, ok := typ.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return v.convert(v.validate.StructPartialCtx(ctx, target, fields...))
}

func dereference(obj any) (any, error) {
	switch value := obj.(type) {
	case models.User, models.Job, models.Contact, models.NetworkingEvent,
		models.CoverLetter, models.Resume, models.CoverLetterRequest:
		return value, nil
	case *models.User:
		return *value, nil
	case *models.Job:
		return *value, nil
	case *models.Contact:
		return *value, nil
	case *models.NetworkingEvent:
		return *value, nil
	case *models.CoverLetter:
		return *value, nil
	case *models.Resume:
		return *value, nil
	case *models.CoverLetterRequest:
		return *value, nil
	default:
		return nil, ErrUnsupportedType
	}
}

// convert turns the first validator.FieldError into a package sentinel.
func (v *ResourceValidator) convert(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	fe := fieldErrors[0]
	switch {
	case fe.StructField() == FieldUserID:
		return ErrInvalidUserID
	case strings.HasPrefix(fe.Tag(), "required"):
		return fmt.Errorf("%w: %s", ErrRequiredField, fe.Field())
	case fe.Param() != "":
		return fmt.Errorf("%w: %s must satisfy %s=%s", ErrInvalidField, fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Errorf("%w: %s must be a valid %s", ErrInvalidField, fe.Field(), fe.Tag())
	}
}
