package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

const (
	defaultFredBaseURL = "https://api.stlouisfed.org/fred"
	defaultFredTimeout = 30 * time.Second

	// missingValue is how FRED marks observations with no published value.
	missingValue = "."
)

// FredClient fetches series observations from the FRED REST API.
type FredClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewFredClient creates a FRED provider with the default endpoint and HTTP client.
func NewFredClient(apiKey string) (EconomicProvider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeMissingCredentials, "fred api key is required")
	}

	return &FredClient{
		apiKey:  apiKey,
		baseURL: defaultFredBaseURL,
		client:  &http.Client{Timeout: defaultFredTimeout},
	}, nil
}

// NewFredClientWithBaseURL creates a FRED provider against a custom endpoint
// with the given HTTP client. Used by tests to point at a local server.
func NewFredClientWithBaseURL(apiKey, baseURL string, client *http.Client) (EconomicProvider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeMissingCredentials, "fred api key is required")
	}

	if client == nil {
		client = &http.Client{Timeout: defaultFredTimeout}
	}

	return &FredClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}, nil
}

type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type fredObservationsResponse struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Observations []fredObservation `json:"observations"`
}

// GetSeries implements EconomicProvider.
func (c *FredClient) GetSeries(ctx context.Context, seriesID string, start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.Observation, error) {
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", c.apiKey)
	q.Set("file_type", "json")

	if start.IsSome() {
		q.Set("observation_start", start.Unwrap().Format(types.DateLayout))
	}

	if end.IsSome() {
		q.Set("observation_end", end.Unwrap().Format(types.DateLayout))
	}

	u := fmt.Sprintf("%s/series/observations?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeSeriesFetchFailed, err, "failed to build request for series %s", seriesID)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeSeriesFetchFailed, err, "request failed for series %s", seriesID)
	}
	defer res.Body.Close()

	var body fredObservationsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeSeriesParseFailed, err, "failed to decode response for series %s", seriesID)
	}

	if res.StatusCode != http.StatusOK || body.ErrorCode != 0 {
		if res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusNotFound {
			return nil, errors.Newf(errors.ErrCodeSeriesNotFound, "series %s: %s", seriesID, body.ErrorMessage)
		}

		return nil, errors.Newf(errors.ErrCodeSeriesFetchFailed, "series %s: http %d: %s", seriesID, res.StatusCode, body.ErrorMessage)
	}

	observations := make([]types.Observation, 0, len(body.Observations))

	for _, obs := range body.Observations {
		date, err := time.Parse(types.DateLayout, obs.Date)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeSeriesParseFailed, err, "series %s: bad observation date %q", seriesID, obs.Date)
		}

		value := optional.None[float64]()

		if obs.Value != missingValue && obs.Value != "" {
			parsed, err := strconv.ParseFloat(obs.Value, 64)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrCodeSeriesParseFailed, err, "series %s: bad observation value %q", seriesID, obs.Value)
			}

			value = optional.Some(parsed)
		}

		observations = append(observations, types.Observation{
			Date:  date,
			Value: value,
		})
	}

	return observations, nil
}
