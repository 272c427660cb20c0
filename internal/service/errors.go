package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong login or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrIntegrationFailed    = errors.New("third-party integration failed")
	ErrRenderingCoverLetter = errors.New("cannot render cover letter")
)
