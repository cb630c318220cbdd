package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// DateLayout is the calendar-date layout used across the module for
// observation dates, file contents and CLI flags.
const DateLayout = "2006-01-02"

// SeriesRequest names one time series to fetch: the display name this module
// uses internally and the provider's opaque series identifier.
// Requests are passed as a slice so iteration order is explicit.
type SeriesRequest struct {
	// Name is the human-readable key for the series (e.g. "Treasury_10Y").
	Name string
	// SeriesID is the provider's identifier for the series (e.g. "DGS10").
	SeriesID string
}

// Observation is a single dated value within a series. Providers report
// missing trading or publishing days with no value; those observations carry
// optional.None and are never interpolated.
type Observation struct {
	Date  time.Time
	Value optional.Option[float64]
}

// SeriesResult is one fetched series: its request identity plus the
// observations the provider returned, ordered by date ascending.
type SeriesResult struct {
	Name         string
	SeriesID     string
	Observations []Observation
}

// LastObservation returns the most recent observation of the series,
// or None for an empty series.
func (s SeriesResult) LastObservation() optional.Option[Observation] {
	if len(s.Observations) == 0 {
		return optional.None[Observation]()
	}

	return optional.Some(s.Observations[len(s.Observations)-1])
}

// ObservationAt returns the observation whose date matches the given calendar
// day exactly, or None when the series has no observation on that day.
func (s SeriesResult) ObservationAt(date time.Time) optional.Option[Observation] {
	for _, obs := range s.Observations {
		if sameDay(obs.Date, date) {
			return optional.Some(obs)
		}
	}

	return optional.None[Observation]()
}

// NearestObservation returns the observation whose date has the smallest
// absolute distance to the reference date. When two observations are
// equidistant the earlier one wins, since the ascending scan only replaces
// the candidate on a strict improvement. Returns None for an empty series.
func (s SeriesResult) NearestObservation(reference time.Time) optional.Option[Observation] {
	if len(s.Observations) == 0 {
		return optional.None[Observation]()
	}

	best := s.Observations[0]
	bestDistance := absDuration(best.Date.Sub(reference))

	for _, obs := range s.Observations[1:] {
		distance := absDuration(obs.Date.Sub(reference))
		if distance < bestDistance {
			best = obs
			bestDistance = distance
		}
	}

	return optional.Some(best)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}

	return d
}
