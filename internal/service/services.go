package service

import (
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/tracker"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService

	JobService         ResourceService[models.Job]
	ContactService     ResourceService[models.Contact]
	EventService       ResourceService[models.NetworkingEvent]
	CoverLetterService ResourceService[models.CoverLetter]
	ResumeService      ResourceService[models.Resume]

	UsageService       UsageService
	IntegrationService IntegrationService
}

func NewServices(storages *store.Storages, usageTracker *tracker.Tracker, clients Integrations, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewResourceValidator()
	documents := Documents{Jobs: storages.Jobs, Resumes: storages.Resumes, CoverLetters: storages.CoverLetters}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		AppInfoService: appInfo,

		JobService:         newResourceService(storages.Jobs, validator, jobRules, logger),
		ContactService:     newResourceService(storages.Contacts, validator, contactRules, logger),
		EventService:       newResourceService(storages.Events, validator, eventRules, logger),
		CoverLetterService: newResourceService(storages.CoverLetters, validator, coverLetterRules, logger),
		ResumeService:      newResourceService(storages.Resumes, validator, resumeRules, logger),

		UsageService:       NewUsageService(usageTracker, storages.Usage, storages.Alerts, logger),
		IntegrationService: NewIntegrationService(clients, documents, usageTracker, tracker.PolicyFromConfig(cfg.Tracker), validator, logger),
	}, nil
}
