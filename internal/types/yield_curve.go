package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// YieldCurvePoint is one maturity's yield within a snapshot. Yield is None
// when the maturity's series could not be fetched.
type YieldCurvePoint struct {
	// Maturity is the human-readable maturity label (e.g. "10-Year").
	Maturity string
	// Yield is the yield in percent, or None when unavailable.
	Yield optional.Option[float64]
}

// YieldCurveSnapshot is a single-date cross-section of yields across
// maturities, ordered as requested.
//
// ReferenceDate is the nominal date of the snapshot. Individual points may
// have been sourced from the chronologically nearest available date when the
// reference date was absent from that maturity's history; the snapshot does
// not record each point's true source date.
type YieldCurveSnapshot struct {
	ReferenceDate time.Time
	Points        []YieldCurvePoint
}
