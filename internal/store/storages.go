package store

import (
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

// Storages groups every repository built on one database connection.
type Storages struct {
	UserRepository UserRepository

	Jobs         ResourceRepository[models.Job]
	Contacts     ResourceRepository[models.Contact]
	Events       ResourceRepository[models.NetworkingEvent]
	CoverLetters ResourceRepository[models.CoverLetter]
	Resumes      ResourceRepository[models.Resume]

	Usage  UsageRepository
	Alerts AlertRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		Jobs:           NewResourceRepository(db, jobsTable, log),
		Contacts:       NewResourceRepository(db, contactsTable, log),
		Events:         NewResourceRepository(db, eventsTable, log),
		CoverLetters:   NewResourceRepository(db, coverLettersTable, log),
		Resumes:        NewResourceRepository(db, resumesTable, log),
		Usage:          NewUsageRepository(db, log),
		Alerts:         NewAlertRepository(db, log),
	}
}
