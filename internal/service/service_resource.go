// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

// resourceRules completes an item before it is validated and written.
// prepare must set the owner and may fill defaults.
type resourceRules[T any] struct {
	name    string
	prepare func(item *T, userID int64, now time.Time)
}

type resourceService[T any] struct {
	repository store.ResourceRepository[T]
	validator  validators.Validator
	rules      resourceRules[T]
	now        func() time.Time

	logger *logger.Logger
}

func newResourceService[T any](repository store.ResourceRepository[T], validator validators.Validator, rules resourceRules[T], log *logger.Logger) ResourceService[T] {
	return &resourceService[T]{
		repository: repository,
		validator:  validator,
		rules:      rules,
		now:        time.Now,
		logger:     log,
	}
}

func (s *resourceService[T]) Create(ctx context.Context, userID int64, item T) (T, error) {
	if err := s.prepare(ctx, userID, &item); err != nil {
		var zero T
		return zero, err
	}

	return s.repository.Create(ctx, userID, item)
}

func (s *resourceService[T]) Get(ctx context.Context, userID, id int64) (T, error) {
	return s.repository.Get(ctx, userID, id)
}

func (s *resourceService[T]) List(ctx context.Context, userID int64, filter models.ListFilter) ([]T, error) {
	return s.repository.List(ctx, userID, filter)
}

// Update replaces every writable field of the item with id.
func (s *resourceService[T]) Update(ctx context.Context, userID, id int64, item T) (T, error) {
	if err := s.prepare(ctx, userID, &item); err != nil {
		var zero T
		return zero, err
	}

	return s.repository.Update(ctx, userID, id, item)
}

func (s *resourceService[T]) Delete(ctx context.Context, userID, id int64) error {
	return s.repository.Delete(ctx, userID, id)
}

func (s *resourceService[T]) prepare(ctx context.Context, userID int64, item *T) error {
	s.rules.prepare(item, userID, s.now().UTC())

	if err := s.validator.Validate(ctx, item); err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("resource", s.rules.name).
			Int64("user_id", userID).
			Msg("resource validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}

var jobRules = resourceRules[models.Job]{
	name: "job",
	prepare: func(j *models.Job, userID int64, now time.Time) {
		j.UserID = userID
		if j.Status == "" {
			j.Status = models.JobApplied
		}
		if j.Status == models.JobApplied && j.AppliedAt == nil {
			j.AppliedAt = &now
		}
	},
}

var contactRules = resourceRules[models.Contact]{
	name: "contact",
	prepare: func(c *models.Contact, userID int64, _ time.Time) {
		c.UserID = userID
	},
}

var eventRules = resourceRules[models.NetworkingEvent]{
	name: "networking event",
	prepare: func(e *models.NetworkingEvent, userID int64, _ time.Time) {
		e.UserID = userID
		if e.Status == "" {
			e.Status = models.EventPlanned
		}
		if e.Source == "" {
			e.Source = models.SourceManual
		}
	},
}

var coverLetterRules = resourceRules[models.CoverLetter]{
	name: "cover letter",
	prepare: func(c *models.CoverLetter, userID int64, _ time.Time) {
		c.UserID = userID
	},
}

var resumeRules = resourceRules[models.Resume]{
	name: "resume",
	prepare: func(r *models.Resume, userID int64, _ time.Time) {
		r.UserID = userID
	},
}
