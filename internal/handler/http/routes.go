package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.cfg.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging, h.withThrottle)
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		mountResource(r, "/api/jobs", "job", h.services.JobService)
		mountResource(r, "/api/contacts", "contact", h.services.ContactService)
		mountResource(r, "/api/events", "event", h.services.EventService)
		mountResource(r, "/api/resumes", "resume", h.services.ResumeService)
		mountResource(r, "/api/cover-letters", "cover letter", h.services.CoverLetterService)
		r.Post("/api/cover-letters/generate", h.generateCoverLetter)
		r.Get("/api/cover-letters/{id}/html", h.renderCoverLetter)

		r.Get("/api/integrations/github/repos", h.githubRepositories)
		r.Get("/api/integrations/salaries", h.salarySeries)
		r.Get("/api/integrations/eventbrite/events", h.eventbriteEvents)

		r.Get("/api/usage", h.quotaStatuses)
		r.Get("/api/usage/stats", h.usageSummary)
		r.Get("/api/usage/{service}", h.quotaStatus)
		r.Get("/api/usage/{service}/stats", h.usageStats)
		r.Get("/api/usage/{service}/errors", h.usageErrors)
		r.Post("/api/usage/{service}/reset", h.resetUsage)

		r.Get("/api/alerts", h.listAlerts)
		r.Post("/api/alerts/{id}/acknowledge", h.acknowledgeAlert)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
