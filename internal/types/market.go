package types

import "time"

// MarketData is a single OHLCV bar for a ticker.
type MarketData struct {
	Id     string
	Symbol string
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
