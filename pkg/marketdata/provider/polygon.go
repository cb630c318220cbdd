package provider

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/schollz/progressbar/v3"

	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
	"github.com/rxtech-lab/econdata/pkg/marketdata/writer"
)

const polygonPageLimit = 50000

type PolygonClient struct {
	client *polygon.Client
	writer writer.MarketDataWriter
}

func NewPolygonClient(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeMissingCredentials, "polygon api key is required")
	}

	return &PolygonClient{
		client: polygon.New(apiKey),
		writer: nil,
	}, nil
}

func (c *PolygonClient) ConfigWriter(w writer.MarketDataWriter) {
	c.writer = w
}

// Download iterates the polygon aggregates endpoint for the requested range
// and streams every bar into the writer.
func (c *PolygonClient) Download(ctx context.Context, ticker string, startDate time.Time, endDate time.Time, multiplier int, timespan models.Timespan, onProgress OnDownloadProgress) (path string, err error) {
	if c.writer == nil {
		return "", errors.New(errors.ErrCodeInvalidWriter, "no writer configured, call ConfigWriter first")
	}

	if err = c.writer.Initialize(); err != nil {
		return "", errors.Wrap(errors.ErrCodeOutputPathError, "failed to initialize writer", err)
	}

	defer func() {
		if cerr := c.writer.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to close writer", cerr)
		}
	}()

	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1
	bar := progressbar.NewOptions(totalDays,
		progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", ticker)),
		progressbar.OptionShowCount())

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     ticker,
		Multiplier: multiplier,
		Timespan:   timespan,
		From:       models.Millis(startDate),
		To:         models.Millis(endDate),
	}.WithLimit(polygonPageLimit)

	iter := c.client.ListAggs(ctx, params)

	processed := 0

	for iter.Next() {
		agg := iter.Item()

		if err = c.writer.Write(types.MarketData{
			Id:     "",
			Symbol: ticker,
			Time:   time.Time(agg.Timestamp),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		}); err != nil {
			return "", errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to write bar", err)
		}

		processed++

		if processed%1000 == 0 {
			daysElapsed := int(time.Time(agg.Timestamp).Sub(startDate).Hours() / 24)
			bar.Set(daysElapsed)

			if onProgress != nil {
				onProgress(float64(daysElapsed), float64(totalDays), fmt.Sprintf("Downloading %s", ticker))
			}
		}
	}

	if iter.Err() != nil {
		return "", errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, iter.Err(), "failed to list aggregates for %s", ticker)
	}

	bar.Finish()

	outputPath, err := c.writer.Finalize()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to finalize writer", err)
	}

	return outputPath, nil
}
