package econdata

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

// SeriesRequestConfig is the JSON form of one series request.
type SeriesRequestConfig struct {
	Name     string `json:"name" jsonschema:"title=Name,description=Display name used for the series and its output file,required" validate:"required"`
	SeriesID string `json:"seriesId" jsonschema:"title=Series ID,description=The provider's identifier for the series (e.g. DGS10),required" validate:"required"`
}

// BaseFetchConfig contains common fields for all fetch configurations.
type BaseFetchConfig struct {
	Series    []SeriesRequestConfig `json:"series" jsonschema:"title=Series,description=Series to fetch; omit to use the default treasury set"`
	StartDate string                `json:"startDate,omitempty" jsonschema:"title=Start Date,description=Start date,format=date"`
	EndDate   string                `json:"endDate,omitempty" jsonschema:"title=End Date,description=End date,format=date"`
}

// FredFetchConfig contains configuration for fetching from FRED.
type FredFetchConfig struct {
	BaseFetchConfig

	ApiKey string `json:"apiKey" jsonschema:"title=API Key,description=FRED API key for authentication,required" validate:"required"`
}

// Validate validates the BaseFetchConfig fields.
func (c *BaseFetchConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if c.StartDate != "" {
		if _, err := time.Parse(types.DateLayout, c.StartDate); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDateRange, "invalid startDate format, expected YYYY-MM-DD", err)
		}
	}

	if c.EndDate != "" {
		if _, err := time.Parse(types.DateLayout, c.EndDate); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDateRange, "invalid endDate format, expected YYYY-MM-DD", err)
		}
	}

	return nil
}

// Validate validates the FredFetchConfig.
func (c *FredFetchConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return c.BaseFetchConfig.Validate()
}

// ToRequests converts the configured series list to request values.
// Returns nil when no series are configured, which batch operations treat as
// the default set.
func (c *BaseFetchConfig) ToRequests() []types.SeriesRequest {
	if len(c.Series) == 0 {
		return nil
	}

	requests := make([]types.SeriesRequest, 0, len(c.Series))
	for _, s := range c.Series {
		requests = append(requests, types.SeriesRequest{
			Name:     s.Name,
			SeriesID: s.SeriesID,
		})
	}

	return requests
}

// ToDateRange converts the configured date strings to optional dates.
func (c *BaseFetchConfig) ToDateRange() (start optional.Option[time.Time], end optional.Option[time.Time], err error) {
	start = optional.None[time.Time]()
	end = optional.None[time.Time]()

	if c.StartDate != "" {
		parsed, err := time.Parse(types.DateLayout, c.StartDate)
		if err != nil {
			return start, end, errors.Wrap(errors.ErrCodeInvalidDateRange, "failed to parse startDate", err)
		}

		start = optional.Some(parsed)
	}

	if c.EndDate != "" {
		parsed, err := time.Parse(types.DateLayout, c.EndDate)
		if err != nil {
			return start, end, errors.Wrap(errors.ErrCodeInvalidDateRange, "failed to parse endDate", err)
		}

		end = optional.Some(parsed)
	}

	return start, end, nil
}

// ToClientConfig converts a FredFetchConfig to ClientConfig.
func (c *FredFetchConfig) ToClientConfig(writerType WriterType) ClientConfig {
	return ClientConfig{
		ProviderType: ProviderFred,
		WriterType:   writerType,
		FredApiKey:   c.ApiKey,
	}
}

// ParseFredConfig parses JSON into a FredFetchConfig.
func ParseFredConfig(jsonConfig string) (*FredFetchConfig, error) {
	var config FredFetchConfig
	if err := json.Unmarshal([]byte(jsonConfig), &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse JSON config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
