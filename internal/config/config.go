package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

// SeriesConfig is one named series in a section's series list.
type SeriesConfig struct {
	Name     string `yaml:"name" validate:"required"`
	SeriesID string `yaml:"series_id" validate:"required"`
}

// SectionConfig configures one economic section (bonds, indicators). An empty
// series list selects the section's built-in defaults.
type SectionConfig struct {
	Series       []SeriesConfig `yaml:"series" validate:"omitempty,dive"`
	LookbackDays int            `yaml:"lookback_days" validate:"omitempty,min=1"`
}

// MarketConfig configures the market data section.
type MarketConfig struct {
	Tickers      []string `yaml:"tickers"`
	Interval     string   `yaml:"interval" validate:"omitempty,oneof=1s 1m 3m 5m 15m 30m 1h 2h 4h 6h 8h 12h 1d 3d 1w 1M"`
	LookbackDays int      `yaml:"lookback_days" validate:"omitempty,min=1"`
}

// Config is the application configuration loaded from a YAML file. API keys
// left empty in the file fall back to the FRED_API_KEY and POLYGON_API_KEY
// environment variables.
type Config struct {
	FredApiKey    string `yaml:"fred_api_key" validate:"required"`
	PolygonApiKey string `yaml:"polygon_api_key"`
	DataDir       string `yaml:"data_dir" validate:"required"`
	Writer        string `yaml:"writer" validate:"required,oneof=csv duckdb"`

	Bonds      SectionConfig `yaml:"bonds"`
	Indicators SectionConfig `yaml:"indicators"`
	Market     MarketConfig  `yaml:"market"`
}

// Default returns the configuration used when a key is absent from the file.
func Default() Config {
	return Config{
		FredApiKey:    "",
		PolygonApiKey: "",
		DataDir:       "data",
		Writer:        "csv",
		Bonds: SectionConfig{
			Series:       nil,
			LookbackDays: 365,
		},
		Indicators: SectionConfig{
			Series:       nil,
			LookbackDays: 5 * 365,
		},
		Market: MarketConfig{
			Tickers:      nil,
			Interval:     "1d",
			LookbackDays: 365,
		},
	}
}

// Load reads and validates a YAML configuration file. Missing keys keep
// their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// Parse unmarshals and validates YAML configuration bytes.
func Parse(data []byte) (Config, error) {
	config := Default()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if config.FredApiKey == "" {
		config.FredApiKey = os.Getenv("FRED_API_KEY")
	}

	if config.PolygonApiKey == "" {
		config.PolygonApiKey = os.Getenv("POLYGON_API_KEY")
	}

	if err := validator.New().Struct(config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return config, nil
}

// Requests converts a section's series list. Returns nil when the list is
// empty so callers fall back to their defaults.
func (s SectionConfig) Requests() []types.SeriesRequest {
	if len(s.Series) == 0 {
		return nil
	}

	requests := make([]types.SeriesRequest, 0, len(s.Series))
	for _, series := range s.Series {
		requests = append(requests, types.SeriesRequest{
			Name:     series.Name,
			SeriesID: series.SeriesID,
		})
	}

	return requests
}
