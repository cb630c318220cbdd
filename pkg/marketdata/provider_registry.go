package marketdata

import (
	"github.com/rxtech-lab/econdata/pkg/errors"
	"github.com/rxtech-lab/econdata/pkg/schema"
)

// ProviderInfo contains metadata about a market data provider.
type ProviderInfo struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Description  string `json:"description"`
	RequiresAuth bool   `json:"requiresAuth"`
}

// providerRegistry holds metadata about all supported providers.
var providerRegistry = map[ProviderType]ProviderInfo{
	ProviderPolygon: {
		Name:         string(ProviderPolygon),
		DisplayName:  "Polygon.io",
		Description:  "US stock and index market data provider with historical OHLCV bars",
		RequiresAuth: true,
	},
	ProviderBinance: {
		Name:         string(ProviderBinance),
		DisplayName:  "Binance",
		Description:  "Cryptocurrency exchange with historical klines for crypto trading pairs",
		RequiresAuth: false,
	},
}

// GetSupportedProviders returns a list of all supported provider names.
func GetSupportedProviders() []string {
	providers := make([]string, 0, len(providerRegistry))
	for providerType := range providerRegistry {
		providers = append(providers, string(providerType))
	}

	return providers
}

// GetProviderInfo returns metadata for a specific provider.
func GetProviderInfo(providerName string) (ProviderInfo, error) {
	info, exists := providerRegistry[ProviderType(providerName)]
	if !exists {
		return ProviderInfo{}, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider: %s", providerName)
	}

	return info, nil
}

// GetDownloadConfigSchema returns the JSON schema for a provider's download configuration.
func GetDownloadConfigSchema(providerName string) (string, error) {
	switch ProviderType(providerName) {
	case ProviderPolygon:
		//nolint:exhaustruct // Empty struct is intentional for schema generation
		return schema.ToJSONSchema(PolygonDownloadConfig{})
	case ProviderBinance:
		//nolint:exhaustruct // Empty struct is intentional for schema generation
		return schema.ToJSONSchema(BinanceDownloadConfig{})
	default:
		return "", errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider: %s", providerName)
	}
}

// ParseDownloadConfig parses a JSON configuration string for the given provider.
// Returns the parsed config as an interface{} which can be type-asserted to the specific config type.
func ParseDownloadConfig(providerName string, jsonConfig string) (interface{}, error) {
	switch ProviderType(providerName) {
	case ProviderPolygon:
		return ParsePolygonConfig(jsonConfig)
	case ProviderBinance:
		return ParseBinanceConfig(jsonConfig)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider: %s", providerName)
	}
}
