package econdata

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/econdata/internal/types"
)

// Names of the derived indicator series appended to an indicator batch.
const (
	InflationYoYName = "Inflation_Rate_YoY"
	GDPGrowthQoQName = "GDP_Growth_QoQ"
	cpiSeriesName    = "CPI_Inflation"
	gdpSeriesName    = "GDP_Growth"
	inflationPeriods = 12
)

// DeriveInflationYoY computes the year-over-year inflation rate from a
// monthly CPI index series: the percent change of each observation against
// the observation twelve periods earlier. Observations without a full
// twelve-month lookback, or where either endpoint is missing, are dropped.
func DeriveInflationYoY(cpi types.SeriesResult) types.SeriesResult {
	observations := make([]types.Observation, 0, len(cpi.Observations))

	for i := inflationPeriods; i < len(cpi.Observations); i++ {
		current := cpi.Observations[i]
		base := cpi.Observations[i-inflationPeriods]

		if current.Value.IsNone() || base.Value.IsNone() || base.Value.Unwrap() == 0 {
			continue
		}

		rate := (current.Value.Unwrap()/base.Value.Unwrap() - 1) * 100

		observations = append(observations, types.Observation{
			Date:  current.Date,
			Value: optional.Some(rate),
		})
	}

	return types.SeriesResult{
		Name:         InflationYoYName,
		SeriesID:     cpi.SeriesID,
		Observations: observations,
	}
}

// DeriveGDPGrowth relabels the quarterly GDP growth series. The upstream
// A191RL1Q225SBEA series is already quarter-over-quarter annualized, so the
// observations pass through unchanged.
func DeriveGDPGrowth(gdp types.SeriesResult) types.SeriesResult {
	observations := make([]types.Observation, len(gdp.Observations))
	copy(observations, gdp.Observations)

	return types.SeriesResult{
		Name:         GDPGrowthQoQName,
		SeriesID:     gdp.SeriesID,
		Observations: observations,
	}
}

// AppendDerivedIndicators extends an indicator batch with the derived
// inflation and GDP series when their source series are present.
func AppendDerivedIndicators(results map[string]types.SeriesResult) {
	if cpi, ok := results[cpiSeriesName]; ok {
		derived := DeriveInflationYoY(cpi)
		if len(derived.Observations) > 0 {
			results[InflationYoYName] = derived
		}
	}

	if gdp, ok := results[gdpSeriesName]; ok {
		results[GDPGrowthQoQName] = DeriveGDPGrowth(gdp)
	}
}
