package adapter

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	githubReposEndpoint = "/users/{user}/repos"
	githubPageSize      = "100"
)

type githubAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewGitHubAdapter constructs a [GitHubAdapter] for the REST API at
// cfg.BaseURL. The token is optional; anonymous requests get a lower quota.
func NewGitHubAdapter(cfg config.GitHub, integrations config.Integrations, log *logger.Logger) GitHubAdapter {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), integrations.Timeout).WithBearer(cfg.Token)
	client.SetHeader("Accept", "application/vnd.github+json")
	client.SetHeader("X-GitHub-Api-Version", "2022-11-28")

	return &githubAdapter{client: client, logger: log}
}

func (g *githubAdapter) Repositories(ctx context.Context, user string) ([]models.Repository, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("user", user).
		SetQueryParams(map[string]string{"per_page": githubPageSize, "sort": "updated"}).
		Get(githubReposEndpoint)
	if err != nil {
		return nil, transportError(models.ServiceGitHub, err)
	}
	if err = mapHTTPError(models.ServiceGitHub, resp); err != nil {
		return nil, err
	}

	repos := make([]models.Repository, 0)
	if err = json.Unmarshal(resp.Body(), &repos); err != nil {
		return nil, decodeError(models.ServiceGitHub, resp.StatusCode(), err)
	}

	logger.FromContext(ctx).Debug().Str("user", user).Int("repos", len(repos)).Msg("fetched github repositories")
	return repos, nil
}
