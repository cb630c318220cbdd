package econdata

import (
	"github.com/rxtech-lab/econdata/pkg/errors"
	"github.com/rxtech-lab/econdata/pkg/schema"
)

// ProviderInfo contains metadata about an economic data provider.
type ProviderInfo struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Description  string `json:"description"`
	RequiresAuth bool   `json:"requiresAuth"`
}

// providerRegistry holds metadata about all supported providers.
var providerRegistry = map[ProviderType]ProviderInfo{
	ProviderFred: {
		Name:         string(ProviderFred),
		DisplayName:  "FRED",
		Description:  "Federal Reserve Economic Data: treasury yields, rates and macroeconomic indicator time series",
		RequiresAuth: true,
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

// GetFetchConfigSchema returns the JSON schema for a provider's fetch configuration.
func GetFetchConfigSchema(providerName string) (string, error) {
	switch ProviderType(providerName) {
	case ProviderFred:
		//nolint:exhaustruct // Empty struct is intentional for schema generation
		return schema.ToJSONSchema(FredFetchConfig{})
	default:
		return "", errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider: %s", providerName)
	}
}

// ParseFetchConfig parses a JSON configuration string for the given provider.
// Returns the parsed config as an interface{} which can be type-asserted to the specific config type.
func ParseFetchConfig(providerName string, jsonConfig string) (interface{}, error) {
	switch ProviderType(providerName) {
	case ProviderFred:
		return ParseFredConfig(jsonConfig)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider: %s", providerName)
	}
}
