// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming job tracker entities before they reach
// the store.
//
// Rules are declared with `validate` struct tags on the models and evaluated
// by go-playground/validator. A [Validator] may be restricted to a subset of
// fields, which lets partial requests such as login be checked with the same
// tags as registration.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
