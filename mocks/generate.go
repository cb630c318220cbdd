package mocks

//go:generate mockgen -destination=./mock_economic_provider.go -package=mocks github.com/rxtech-lab/econdata/pkg/econdata/provider EconomicProvider
//go:generate mockgen -destination=./mock_series_writer.go -package=mocks github.com/rxtech-lab/econdata/pkg/econdata/writer SeriesWriter
//go:generate mockgen -destination=./mock_market_writer.go -package=mocks github.com/rxtech-lab/econdata/pkg/marketdata/writer MarketDataWriter
//go:generate mockgen -destination=./mock_market_provider.go -package=mocks github.com/rxtech-lab/econdata/pkg/marketdata/provider Provider
