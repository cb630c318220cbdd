package provider

import (
	"context"
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

// ProviderType defines the type of economic data provider.
type ProviderType string

const (
	ProviderFred ProviderType = "fred"
)

type EconomicProvider interface {
	// GetSeries fetches the observations of one series over the given date
	// range, ordered by date ascending. None for start or end means the
	// provider's full available history on that side.
	// Errors are per-call: callers running batches are expected to catch
	// them and continue with the remaining series.
	GetSeries(ctx context.Context, seriesID string, start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.Observation, error)
}

// NewEconomicProvider creates a new economic data provider based on the provider type.
func NewEconomicProvider(providerType ProviderType, config any) (EconomicProvider, error) {
	switch providerType {
	case ProviderFred:
		apiKey, ok := config.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration, "fred provider requires API key string config")
		}

		return NewFredClient(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported economic data provider: %s", providerType)
	}
}
