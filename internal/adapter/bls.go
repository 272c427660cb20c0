package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	blsSeriesEndpoint = "/publicAPI/v2/timeseries/data/"
	blsSucceeded      = "REQUEST_SUCCEEDED"
)

type blsRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear,omitempty"`
	EndYear         string   `json:"endyear,omitempty"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type blsResponse struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []struct {
			SeriesID string `json:"seriesID"`
			Data     []struct {
				Year       string `json:"year"`
				Period     string `json:"period"`
				PeriodName string `json:"periodName"`
				Value      string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

type blsAdapter struct {
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

// NewBLSAdapter constructs a [BLSAdapter]. Without an API key the public v2
// endpoint still answers with the unregistered quota.
func NewBLSAdapter(cfg config.BLS, integrations config.Integrations, log *logger.Logger) BLSAdapter {
	return &blsAdapter{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), integrations.Timeout),
		apiKey: cfg.APIKey,
		logger: log,
	}
}

func (b *blsAdapter) Series(ctx context.Context, seriesIDs []string, startYear, endYear int) ([]models.SalarySeries, error) {
	if len(seriesIDs) == 0 {
		return nil, &StatusError{Service: models.ServiceBLS, Code: http.StatusBadRequest, Err: fmt.Errorf("%w: no series ids", ErrBadRequest)}
	}

	body := blsRequest{SeriesID: seriesIDs, RegistrationKey: b.apiKey}
	if startYear > 0 {
		body.StartYear = strconv.Itoa(startYear)
	}
	if endYear > 0 {
		body.EndYear = strconv.Itoa(endYear)
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(blsSeriesEndpoint)
	if err != nil {
		return nil, transportError(models.ServiceBLS, err)
	}
	if err = mapHTTPError(models.ServiceBLS, resp); err != nil {
		return nil, err
	}

	var payload blsResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, decodeError(models.ServiceBLS, resp.StatusCode(), err)
	}
	if payload.Status != blsSucceeded {
		return nil, blsStatusError(payload.Status, payload.Message)
	}

	series := make([]models.SalarySeries, 0, len(payload.Results.Series))
	for _, s := range payload.Results.Series {
		points := make([]models.SalaryPoint, 0, len(s.Data))
		for _, d := range s.Data {
			points = append(points, models.SalaryPoint{Year: d.Year, Period: d.Period, Label: d.PeriodName, Value: d.Value})
		}
		series = append(series, models.SalarySeries{SeriesID: s.SeriesID, Points: points})
	}

	return series, nil
}

// blsStatusError converts an unsuccessful BLS envelope. The API answers 200
// even when the daily threshold is reached, which is reported as 429.
func blsStatusError(status string, messages []string) error {
	msg := strings.Join(messages, "; ")
	code := http.StatusUnprocessableEntity
	sentinel := ErrBadRequest
	if strings.Contains(strings.ToLower(msg), "threshold") {
		code = http.StatusTooManyRequests
		sentinel = ErrTooManyRequests
	}

	return &StatusError{
		Service: models.ServiceBLS,
		Code:    code,
		Err:     errors.Join(sentinel, fmt.Errorf("%s: %s", status, msg)),
	}
}
