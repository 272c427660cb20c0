// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/tracker"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

// Endpoint labels recorded in usage statistics.
const (
	endpointGitHubRepos      = "/users/{user}/repos"
	endpointBLSSeries        = "/publicAPI/v2/timeseries/data/"
	endpointEventbriteEvents = "/v3/organizations/{id}/events/"
	endpointGeminiGenerate   = "generateContent"
)

// Integrations groups the third-party clients. Generator may be nil when no
// API key is configured; cover letters are then built from a template.
type Integrations struct {
	GitHub     adapter.GitHubAdapter
	BLS        adapter.BLSAdapter
	Eventbrite adapter.EventbriteAdapter
	Generator  adapter.TextGenerator
}

// Documents are the repositories cover letter generation reads and writes.
type Documents struct {
	Jobs         store.ResourceRepository[models.Job]
	Resumes      store.ResourceRepository[models.Resume]
	CoverLetters store.ResourceRepository[models.CoverLetter]
}

type integrationService struct {
	clients   Integrations
	documents Documents
	guard     tracker.Guard
	policy    tracker.Policy
	validator validators.Validator

	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy

	repos    *lastGood[[]models.Repository]
	salaries *lastGood[[]models.SalarySeries]
	events   *lastGood[[]models.NetworkingEvent]

	logger *logger.Logger
}

func NewIntegrationService(clients Integrations, documents Documents, guard tracker.Guard, policy tracker.Policy, validator validators.Validator, log *logger.Logger) IntegrationService {
	return &integrationService{
		clients:   clients,
		documents: documents,
		guard:     guard,
		policy:    policy,
		validator: validator,
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitizer: bluemonday.UGCPolicy(),
		repos:     newLastGood[[]models.Repository](),
		salaries:  newLastGood[[]models.SalarySeries](),
		events:    newLastGood[[]models.NetworkingEvent](),
		logger:    log,
	}
}

func (s *integrationService) GitHubRepositories(ctx context.Context, userID int64, user string) ([]models.Repository, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, fmt.Errorf("%w: github user is required", ErrInvalidDataProvided)
	}

	repos, err := tracker.Execute(ctx, s.guard, s.policy, tracker.Call[[]models.Repository]{
		Service:  models.ServiceGitHub,
		Endpoint: endpointGitHubRepos,
		UserID:   userID,
		Do: func(ctx context.Context) ([]models.Repository, int, error) {
			repos, err := s.clients.GitHub.Repositories(ctx, user)
			return repos, adapter.StatusCode(err), err
		},
		Fallback: s.repos.fallback(user),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIntegrationFailed, err)
	}

	s.repos.store(user, repos)
	return repos, nil
}

func (s *integrationService) SalarySeries(ctx context.Context, userID int64, seriesIDs []string, startYear, endYear int) ([]models.SalarySeries, error) {
	ids := make([]string, 0, len(seriesIDs))
	for _, id := range seriesIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one series id is required", ErrInvalidDataProvided)
	}
	if startYear > 0 && endYear > 0 && startYear > endYear {
		return nil, fmt.Errorf("%w: start year %d is after end year %d", ErrInvalidDateRange, startYear, endYear)
	}

	key := fmt.Sprintf("%s:%d:%d", strings.Join(ids, ","), startYear, endYear)
	series, err := tracker.Execute(ctx, s.guard, s.policy, tracker.Call[[]models.SalarySeries]{
		Service:  models.ServiceBLS,
		Endpoint: endpointBLSSeries,
		UserID:   userID,
		Do: func(ctx context.Context) ([]models.SalarySeries, int, error) {
			series, err := s.clients.BLS.Series(ctx, ids, startYear, endYear)
			return series, adapter.StatusCode(err), err
		},
		Fallback: s.salaries.fallback(key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIntegrationFailed, err)
	}

	s.salaries.store(key, series)
	return series, nil
}

func (s *integrationService) EventbriteEvents(ctx context.Context, userID int64, organizationID string) ([]models.NetworkingEvent, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return nil, fmt.Errorf("%w: organization id is required", ErrInvalidDataProvided)
	}

	events, err := tracker.Execute(ctx, s.guard, s.policy, tracker.Call[[]models.NetworkingEvent]{
		Service:  models.ServiceEventbrite,
		Endpoint: endpointEventbriteEvents,
		UserID:   userID,
		Do: func(ctx context.Context) ([]models.NetworkingEvent, int, error) {
			events, err := s.clients.Eventbrite.OrganizationEvents(ctx, organizationID)
			return events, adapter.StatusCode(err), err
		},
		Fallback: s.events.fallback(organizationID),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIntegrationFailed, err)
	}

	s.events.store(organizationID, events)
	return events, nil
}

// GenerateCoverLetter fills the request from the referenced job and resume,
// asks the generator for a draft and stores the letter. When the generator
// is missing, rate limited or failing, a template letter is stored with
// Generated set to false.
func (s *integrationService) GenerateCoverLetter(ctx context.Context, userID int64, request models.CoverLetterRequest) (models.CoverLetter, error) {
	log := logger.FromContext(ctx)

	if err := s.completeRequest(ctx, userID, &request); err != nil {
		return models.CoverLetter{}, err
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.CoverLetter{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	content, generated := coverLetterTemplate(request), false
	if s.clients.Generator != nil {
		text, err := tracker.Execute(ctx, s.guard, s.policy, tracker.Call[string]{
			Service:  models.ServiceGemini,
			Endpoint: endpointGeminiGenerate,
			UserID:   userID,
			Do: func(ctx context.Context) (string, int, error) {
				text, err := s.clients.Generator.Generate(ctx, coverLetterPrompt(request))
				return text, adapter.StatusCode(err), err
			},
			Fallback: func(ctx context.Context, cause error) (string, error) {
				log.Warn().Err(cause).Msg("cover letter generation failed, using template")
				return "", nil
			},
		})
		if err == nil && text != "" {
			content, generated = text, true
		}
	}

	letter := models.CoverLetter{
		UserID:    userID,
		JobID:     request.JobID,
		Title:     fmt.Sprintf("%s at %s", request.Title, request.Company),
		Content:   content,
		Generated: generated,
	}
	saved, err := s.documents.CoverLetters.Create(ctx, userID, letter)
	if err != nil {
		return models.CoverLetter{}, fmt.Errorf("error saving cover letter: %w", err)
	}

	log.Info().Int64("id", saved.ID).Bool("generated", generated).Msg("cover letter created")
	return saved, nil
}

// completeRequest copies unset fields from the referenced job and resume.
func (s *integrationService) completeRequest(ctx context.Context, userID int64, request *models.CoverLetterRequest) error {
	if request.JobID != nil {
		job, err := s.documents.Jobs.Get(ctx, userID, *request.JobID)
		if err != nil {
			return fmt.Errorf("error loading job %d: %w", *request.JobID, err)
		}
		if request.Company == "" {
			request.Company = job.Company
		}
		if request.Title == "" {
			request.Title = job.Title
		}
		if request.JobNotes == "" {
			request.JobNotes = strings.TrimSpace(job.Description + "\n" + job.Notes)
		}
	}

	if request.ResumeID != nil && request.Resume == "" {
		resume, err := s.documents.Resumes.Get(ctx, userID, *request.ResumeID)
		if err != nil {
			return fmt.Errorf("error loading resume %d: %w", *request.ResumeID, err)
		}
		request.Resume = resume.Content
	}

	return nil
}

// RenderCoverLetter converts the markdown content of a cover letter into
// HTML safe to embed in a page.
func (s *integrationService) RenderCoverLetter(ctx context.Context, userID, id int64) (string, error) {
	letter, err := s.documents.CoverLetters.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err = s.markdown.Convert([]byte(letter.Content), &buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderingCoverLetter, err)
	}

	return string(s.sanitizer.SanitizeBytes(buf.Bytes())), nil
}

const (
	// maxFallbackEntries bounds each last-good cache; keys come from
	// request parameters.
	maxFallbackEntries = 1024
	fallbackTTL        = 24 * time.Hour
)

type lastGoodEntry[T any] struct {
	value    T
	storedAt time.Time
}

// lastGood remembers the latest successful response per request key and
// serves it when a later call fails. Entries expire after ttl; when the
// cache is full the oldest entry is evicted.
type lastGood[T any] struct {
	mu         sync.RWMutex
	values     map[string]lastGoodEntry[T]
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

func newLastGood[T any]() *lastGood[T] {
	return &lastGood[T]{
		values:     make(map[string]lastGoodEntry[T]),
		maxEntries: maxFallbackEntries,
		ttl:        fallbackTTL,
		now:        time.Now,
	}
}

func (c *lastGood[T]) store(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, ok := c.values[key]; !ok && len(c.values) >= c.maxEntries {
		c.evict(now)
	}
	c.values[key] = lastGoodEntry[T]{value: value, storedAt: now}
}

// evict drops expired entries, or the oldest one when none has expired.
// Callers hold mu.
func (c *lastGood[T]) evict(now time.Time) {
	var oldestKey string
	var oldest time.Time
	for key, entry := range c.values {
		if now.Sub(entry.storedAt) >= c.ttl {
			delete(c.values, key)
			continue
		}
		if oldestKey == "" || entry.storedAt.Before(oldest) {
			oldestKey, oldest = key, entry.storedAt
		}
	}
	if len(c.values) >= c.maxEntries {
		delete(c.values, oldestKey)
	}
}

func (c *lastGood[T]) get(key string) (T, bool) {
	c.mu.RLock()
	entry, ok := c.values[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(entry.storedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return entry.value, true
}

func (c *lastGood[T]) fallback(key string) func(ctx context.Context, cause error) (T, error) {
	return func(ctx context.Context, cause error) (T, error) {
		value, ok := c.get(key)
		if !ok {
			return value, cause
		}

		logger.FromContext(ctx).Warn().Err(cause).Str("key", key).Msg("serving last successful response")
		return value, nil
	}
}
