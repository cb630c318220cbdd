package provider

import (
	"context"
	"time"

	"github.com/polygon-io/client-go/rest/models"

	"github.com/rxtech-lab/econdata/pkg/errors"
	"github.com/rxtech-lab/econdata/pkg/marketdata/writer"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// OnDownloadProgress reports download progress. current and total are in
// provider-specific units (bars, milliseconds).
type OnDownloadProgress = func(current float64, total float64, message string)

// Provider downloads historical OHLCV bars for one ticker at a time and
// streams them into a configured writer.
type Provider interface {
	// ConfigWriter sets the writer the next Download streams bars into.
	ConfigWriter(w writer.MarketDataWriter)
	// Download fetches bars for the ticker and date range and writes them
	// through the configured writer. Returns the writer's output path.
	Download(ctx context.Context, ticker string, startDate time.Time, endDate time.Time, multiplier int, timespan models.Timespan, onProgress OnDownloadProgress) (path string, err error)
}

// NewMarketDataProvider creates a provider of the given type. apiKey is only
// required for providers that authenticate.
func NewMarketDataProvider(providerType ProviderType, apiKey string) (Provider, error) {
	switch providerType {
	case ProviderPolygon:
		return NewPolygonClient(apiKey)
	case ProviderBinance:
		return NewBinanceClient()
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}
