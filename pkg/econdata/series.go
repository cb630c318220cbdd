package econdata

import (
	"context"
	"sort"
	"time"

	"github.com/moznion/go-optional"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

// FetchSeriesBatch fetches the requested series over a shared date range.
//
// A nil request slice defaults to the treasury bond series. When the end date
// is None it defaults to the current date; when the start date is None it
// defaults to one year before the end date.
//
// Each series is fetched independently: a provider error or an empty result
// is logged and that series is omitted from the returned map, while the rest
// of the batch continues. The result therefore contains only the names that
// succeeded with non-empty data, and a single bad identifier can never abort
// its siblings.
func (c *Client) FetchSeriesBatch(ctx context.Context, requests []types.SeriesRequest, startDate optional.Option[time.Time], endDate optional.Option[time.Time]) map[string]types.SeriesResult {
	if requests == nil {
		requests = DefaultBondSeries()
	}

	end := endDate.TakeOr(time.Now())
	start := startDate.TakeOr(end.AddDate(0, 0, -DefaultBondLookbackDays))

	results := make(map[string]types.SeriesResult, len(requests))

	bar := progressbar.NewOptions(len(requests),
		progressbar.OptionSetDescription("Fetching series"),
		progressbar.OptionShowCount())

	for _, request := range requests {
		observations, err := c.provider.GetSeries(ctx, request.SeriesID, optional.Some(start), optional.Some(end))
		if err != nil {
			c.logger.Warn("failed to fetch series, skipping",
				zap.String("name", request.Name),
				zap.String("series_id", request.SeriesID),
				zap.Error(err))
			bar.Add(1)

			continue
		}

		if len(observations) == 0 {
			c.logger.Info("series returned no data, skipping",
				zap.String("name", request.Name),
				zap.String("series_id", request.SeriesID),
				zap.Error(errors.NewEmptySeriesError(request.Name, request.SeriesID)))
			bar.Add(1)

			continue
		}

		results[request.Name] = types.SeriesResult{
			Name:         request.Name,
			SeriesID:     request.SeriesID,
			Observations: observations,
		}

		c.logger.Info("fetched series",
			zap.String("name", request.Name),
			zap.String("series_id", request.SeriesID),
			zap.Int("observations", len(observations)))
		bar.Add(1)
	}

	bar.Finish()

	return results
}

// PersistSeriesBatch writes each fetched series through the configured
// writer under outputDir and returns the list of file paths written.
// Existing files of the same name are overwritten; writes are not atomic.
func (c *Client) PersistSeriesBatch(results map[string]types.SeriesResult, outputDir string) (paths []string, err error) {
	seriesWriter, err := c.setupWriter(outputDir)
	if err != nil {
		return nil, err
	}

	defer func() {
		if cerr := seriesWriter.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeWriteFailed, "failed to close writer", cerr)
		}
	}()

	// Map iteration order is random; sort names so file output and the
	// returned path list are stable across runs.
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		result := results[name]

		if err := seriesWriter.Write(result); err != nil {
			return nil, errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to write series %s", name)
		}

		c.logger.Info("persisted series",
			zap.String("name", name),
			zap.Int("observations", len(result.Observations)))
	}

	paths, err = seriesWriter.Finalize()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, "failed to finalize writer", err)
	}

	return paths, nil
}
