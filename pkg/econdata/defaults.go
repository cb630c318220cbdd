package econdata

import "github.com/rxtech-lab/econdata/internal/types"

// Default lookback windows applied by FetchSeriesBatch when no explicit
// date range is supplied.
const (
	DefaultBondLookbackDays      = 365
	DefaultIndicatorLookbackDays = 5 * 365
)

var defaultBondSeries = []types.SeriesRequest{
	{Name: "Treasury_3M", SeriesID: "DTB3"},   // 3-Month Treasury Bill
	{Name: "Treasury_2Y", SeriesID: "DGS2"},   // 2-Year Treasury Constant Maturity
	{Name: "Treasury_5Y", SeriesID: "DGS5"},   // 5-Year Treasury Constant Maturity
	{Name: "Treasury_10Y", SeriesID: "DGS10"}, // 10-Year Treasury Constant Maturity
	{Name: "Treasury_30Y", SeriesID: "DGS30"}, // 30-Year Treasury Constant Maturity
	{Name: "Yield_Curve", SeriesID: "T10Y2Y"}, // 10-Year Treasury Minus 2-Year Treasury
}

var defaultMaturities = []types.SeriesRequest{
	{Name: "3-Month", SeriesID: "DTB3"},
	{Name: "2-Year", SeriesID: "DGS2"},
	{Name: "5-Year", SeriesID: "DGS5"},
	{Name: "10-Year", SeriesID: "DGS10"},
	{Name: "30-Year", SeriesID: "DGS30"},
}

var defaultIndicators = []types.SeriesRequest{
	{Name: "Unemployment_Rate", SeriesID: "UNRATE"},
	{Name: "CPI_Inflation", SeriesID: "CPIAUCSL"},
	{Name: "Core_CPI", SeriesID: "CPILFESL"},
	{Name: "GDP_Growth", SeriesID: "A191RL1Q225SBEA"},
	{Name: "Industrial_Production", SeriesID: "INDPRO"},
	{Name: "Consumer_Sentiment", SeriesID: "UMCSENT"},
	{Name: "Retail_Sales", SeriesID: "RSXFS"},
	{Name: "Housing_Starts", SeriesID: "HOUST"},
	{Name: "Initial_Claims", SeriesID: "ICSA"},
	{Name: "Fed_Funds_Rate", SeriesID: "FEDFUNDS"},
}

// DefaultBondSeries returns the default treasury-yield series requests plus
// the 10Y-2Y slope. The returned slice is a copy; callers may modify it
// without affecting later calls.
func DefaultBondSeries() []types.SeriesRequest {
	return copyRequests(defaultBondSeries)
}

// DefaultMaturities returns the default yield-curve maturity requests in
// plotting order, shortest maturity first.
func DefaultMaturities() []types.SeriesRequest {
	return copyRequests(defaultMaturities)
}

// DefaultIndicators returns the default macroeconomic indicator requests.
func DefaultIndicators() []types.SeriesRequest {
	return copyRequests(defaultIndicators)
}

func copyRequests(requests []types.SeriesRequest) []types.SeriesRequest {
	out := make([]types.SeriesRequest, len(requests))
	copy(out, requests)

	return out
}
