package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-job-tracker/models"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL    string `json:"url"`
			Prefix string `json:"prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimitRPS   float64  `json:"rate_limit_rps"`
		RateLimitBurst int      `json:"rate_limit_burst"`
		TrustProxy     bool     `json:"trust_proxy"`
	} `json:"server,omitempty"`

	Tracker struct {
		MaxRetries uint64                          `json:"max_retries"`
		BaseDelay  Duration                        `json:"base_delay"`
		MaxDelay   Duration                        `json:"max_delay"`
		Services   map[string]models.ServiceLimits `json:"services"`
	} `json:"tracker,omitempty"`

	Integrations struct {
		Timeout Duration `json:"timeout"`
		Gemini  struct {
			APIKey string `json:"api_key"`
			Model  string `json:"model"`
		} `json:"gemini,omitempty"`
		GitHub struct {
			BaseURL string `json:"base_url"`
			Token   string `json:"token"`
		} `json:"github,omitempty"`
		BLS struct {
			BaseURL string `json:"base_url"`
			APIKey  string `json:"api_key"`
		} `json:"bls,omitempty"`
		Eventbrite struct {
			BaseURL string `json:"base_url"`
			Token   string `json:"token"`
		} `json:"eventbrite,omitempty"`
	} `json:"integrations,omitempty"`

	Workers struct {
		RetentionDays      int    `json:"retention_days"`
		RetentionSchedule  string `json:"retention_schedule"`
		HealthSyncSchedule string `json:"health_sync_schedule"`
	} `json:"workers,omitempty"`

	Dashboard struct {
		ServerAddress   string   `json:"server_address"`
		Token           string   `json:"token"`
		RefreshInterval Duration `json:"refresh_interval"`
		LogFile         string   `json:"log_file"`
	} `json:"dashboard,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Redis: Redis{
				URL:    jsonCfg.Storage.Redis.URL,
				Prefix: jsonCfg.Storage.Redis.Prefix,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimitRPS:   jsonCfg.Server.RateLimitRPS,
			RateLimitBurst: jsonCfg.Server.RateLimitBurst,
			TrustProxy:     jsonCfg.Server.TrustProxy,
		},
		Tracker: Tracker{
			MaxRetries: jsonCfg.Tracker.MaxRetries,
			BaseDelay:  time.Duration(jsonCfg.Tracker.BaseDelay),
			MaxDelay:   time.Duration(jsonCfg.Tracker.MaxDelay),
			Services:   jsonCfg.Tracker.Services,
		},
		Integrations: Integrations{
			Timeout: time.Duration(jsonCfg.Integrations.Timeout),
			Gemini: Gemini{
				APIKey: jsonCfg.Integrations.Gemini.APIKey,
				Model:  jsonCfg.Integrations.Gemini.Model,
			},
			GitHub: GitHub{
				BaseURL: jsonCfg.Integrations.GitHub.BaseURL,
				Token:   jsonCfg.Integrations.GitHub.Token,
			},
			BLS: BLS{
				BaseURL: jsonCfg.Integrations.BLS.BaseURL,
				APIKey:  jsonCfg.Integrations.BLS.APIKey,
			},
			Eventbrite: Eventbrite{
				BaseURL: jsonCfg.Integrations.Eventbrite.BaseURL,
				Token:   jsonCfg.Integrations.Eventbrite.Token,
			},
		},
		Workers: Workers{
			RetentionDays:      jsonCfg.Workers.RetentionDays,
			RetentionSchedule:  jsonCfg.Workers.RetentionSchedule,
			HealthSyncSchedule: jsonCfg.Workers.HealthSyncSchedule,
		},
		Dashboard: Dashboard{
			ServerAddress:   jsonCfg.Dashboard.ServerAddress,
			Token:           jsonCfg.Dashboard.Token,
			RefreshInterval: time.Duration(jsonCfg.Dashboard.RefreshInterval),
			LogFile:         jsonCfg.Dashboard.LogFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
