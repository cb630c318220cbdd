package econdata

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

// FetchYieldCurveSnapshot fetches the yield of every maturity at (or near) a
// single reference date.
//
// When referenceDate is None the snapshot is anchored on the first maturity
// in the slice: its full history is fetched and its most recent observation
// date becomes the reference date. This couples the chosen date to whichever
// maturity happens to be first; callers that care should pass an explicit
// reference date.
//
// For each maturity the full history is fetched independently. An
// observation on the exact reference date is used directly; otherwise the
// observation with the smallest absolute distance to the reference date is
// used, with the earlier date winning a tie. That substitution is local to
// the maturity: the snapshot's ReferenceDate stays the originally selected
// date, and the point's true source date is not recorded. A failed or empty
// fetch yields a point with a None yield rather than aborting the snapshot.
func (c *Client) FetchYieldCurveSnapshot(ctx context.Context, maturities []types.SeriesRequest, referenceDate optional.Option[time.Time]) (types.YieldCurveSnapshot, error) {
	if maturities == nil {
		maturities = DefaultMaturities()
	}

	reference, err := c.resolveReferenceDate(ctx, maturities, referenceDate)
	if err != nil {
		return types.YieldCurveSnapshot{}, err
	}

	points := make([]types.YieldCurvePoint, 0, len(maturities))

	for _, maturity := range maturities {
		observations, err := c.provider.GetSeries(ctx, maturity.SeriesID, optional.None[time.Time](), optional.None[time.Time]())
		if err != nil {
			c.logger.Warn("failed to fetch maturity series, recording missing yield",
				zap.String("maturity", maturity.Name),
				zap.String("series_id", maturity.SeriesID),
				zap.Error(err))

			points = append(points, types.YieldCurvePoint{
				Maturity: maturity.Name,
				Yield:    optional.None[float64](),
			})

			continue
		}

		series := types.SeriesResult{
			Name:         maturity.Name,
			SeriesID:     maturity.SeriesID,
			Observations: observations,
		}

		points = append(points, types.YieldCurvePoint{
			Maturity: maturity.Name,
			Yield:    c.yieldAt(series, reference),
		})
	}

	return types.YieldCurveSnapshot{
		ReferenceDate: reference,
		Points:        points,
	}, nil
}

// resolveReferenceDate returns the explicit reference date when given, and
// otherwise anchors on the latest observation of the first maturity. Unlike
// per-maturity fetches, a failure here is fatal: without an anchor there is
// no snapshot date at all.
func (c *Client) resolveReferenceDate(ctx context.Context, maturities []types.SeriesRequest, referenceDate optional.Option[time.Time]) (time.Time, error) {
	if referenceDate.IsSome() {
		return referenceDate.Unwrap(), nil
	}

	if len(maturities) == 0 {
		return time.Time{}, errors.New(errors.ErrCodeSnapshotAnchorFailed, "no maturities to anchor the reference date on")
	}

	anchor := maturities[0]

	observations, err := c.provider.GetSeries(ctx, anchor.SeriesID, optional.None[time.Time](), optional.None[time.Time]())
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrCodeSnapshotAnchorFailed, err, "failed to fetch anchor series %s", anchor.SeriesID)
	}

	if len(observations) == 0 {
		return time.Time{}, errors.Newf(errors.ErrCodeSnapshotAnchorFailed, "anchor series %s has no observations", anchor.SeriesID)
	}

	reference := observations[len(observations)-1].Date

	c.logger.Info("anchored yield curve reference date",
		zap.String("maturity", anchor.Name),
		zap.String("series_id", anchor.SeriesID),
		zap.String("reference_date", reference.Format(types.DateLayout)))

	return reference, nil
}

// yieldAt selects the value of a maturity series at the reference date,
// falling back to the chronologically nearest observation.
func (c *Client) yieldAt(series types.SeriesResult, reference time.Time) optional.Option[float64] {
	if exact := series.ObservationAt(reference); exact.IsSome() {
		return exact.Unwrap().Value
	}

	nearest := series.NearestObservation(reference)
	if nearest.IsNone() {
		c.logger.Warn("maturity series is empty, recording missing yield",
			zap.String("maturity", series.Name),
			zap.String("series_id", series.SeriesID))

		return optional.None[float64]()
	}

	obs := nearest.Unwrap()

	c.logger.Debug("reference date absent from series, using nearest observation",
		zap.String("maturity", series.Name),
		zap.String("reference_date", reference.Format(types.DateLayout)),
		zap.String("nearest_date", obs.Date.Format(types.DateLayout)))

	return obs.Value
}
