package marketdata

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

// BaseDownloadConfig contains common fields for all download configurations.
type BaseDownloadConfig struct {
	Tickers   []string `json:"tickers" jsonschema:"title=Tickers,description=Trading symbols to download; omit to use the default index set"`
	StartDate string   `json:"startDate" jsonschema:"title=Start Date,description=Start date,format=date,required" validate:"required"`
	EndDate   string   `json:"endDate" jsonschema:"title=End Date,description=End date,format=date,required" validate:"required"`
	Interval  string   `json:"interval" jsonschema:"title=Interval,description=Bar interval,required,enum=1s,enum=1m,enum=3m,enum=5m,enum=15m,enum=30m,enum=1h,enum=2h,enum=4h,enum=6h,enum=8h,enum=12h,enum=1d,enum=3d,enum=1w,enum=1M" validate:"required,oneof=1s 1m 3m 5m 15m 30m 1h 2h 4h 6h 8h 12h 1d 3d 1w 1M"`
}

// PolygonDownloadConfig contains configuration for downloading from Polygon.io.
type PolygonDownloadConfig struct {
	BaseDownloadConfig

	ApiKey string `json:"apiKey" jsonschema:"title=API Key,description=Polygon.io API key for authentication,required" validate:"required"`
}

// BinanceDownloadConfig contains configuration for downloading from Binance.
// The public market data API does not require authentication.
type BinanceDownloadConfig struct {
	BaseDownloadConfig
}

// Validate validates the BaseDownloadConfig fields.
func (c *BaseDownloadConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if _, err := time.Parse(types.DateLayout, c.StartDate); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDateRange, "invalid startDate format, expected YYYY-MM-DD", err)
	}

	if _, err := time.Parse(types.DateLayout, c.EndDate); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDateRange, "invalid endDate format, expected YYYY-MM-DD", err)
	}

	return nil
}

// Validate validates the PolygonDownloadConfig.
func (c *PolygonDownloadConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return c.BaseDownloadConfig.Validate()
}

// Validate validates the BinanceDownloadConfig.
func (c *BinanceDownloadConfig) Validate() error {
	return c.BaseDownloadConfig.Validate()
}

// ToBatchParams converts the config to DownloadBatch arguments. Returns nil
// tickers when none are configured, which selects the default set.
func (c *BaseDownloadConfig) ToBatchParams() (tickers []string, startDate time.Time, endDate time.Time, timespan Timespan, err error) {
	startDate, err = time.Parse(types.DateLayout, c.StartDate)
	if err != nil {
		return nil, time.Time{}, time.Time{}, "", errors.Wrap(errors.ErrCodeInvalidDateRange, "failed to parse startDate", err)
	}

	endDate, err = time.Parse(types.DateLayout, c.EndDate)
	if err != nil {
		return nil, time.Time{}, time.Time{}, "", errors.Wrap(errors.ErrCodeInvalidDateRange, "failed to parse endDate", err)
	}

	if len(c.Tickers) > 0 {
		tickers = c.Tickers
	}

	return tickers, startDate, endDate, Timespan(c.Interval), nil
}

// ToClientConfig converts a PolygonDownloadConfig to ClientConfig.
func (c *PolygonDownloadConfig) ToClientConfig(dataPath string, writerType WriterType) ClientConfig {
	return ClientConfig{
		ProviderType:  ProviderPolygon,
		WriterType:    writerType,
		DataPath:      dataPath,
		PolygonApiKey: c.ApiKey,
	}
}

// ToClientConfig converts a BinanceDownloadConfig to ClientConfig.
func (c *BinanceDownloadConfig) ToClientConfig(dataPath string, writerType WriterType) ClientConfig {
	return ClientConfig{
		ProviderType:  ProviderBinance,
		WriterType:    writerType,
		DataPath:      dataPath,
		PolygonApiKey: "",
	}
}

// ParsePolygonConfig parses JSON into a PolygonDownloadConfig.
func ParsePolygonConfig(jsonConfig string) (*PolygonDownloadConfig, error) {
	var config PolygonDownloadConfig
	if err := json.Unmarshal([]byte(jsonConfig), &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse JSON config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// ParseBinanceConfig parses JSON into a BinanceDownloadConfig.
func ParseBinanceConfig(jsonConfig string) (*BinanceDownloadConfig, error) {
	var config BinanceDownloadConfig
	if err := json.Unmarshal([]byte(jsonConfig), &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse JSON config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
