package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	binance "github.com/adshao/go-binance/v2"
	"github.com/polygon-io/client-go/rest/models"

	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
	"github.com/rxtech-lab/econdata/pkg/marketdata/writer"
)

// binancePageSize is the maximum number of klines one request returns.
const binancePageSize = 500

type BinanceClient struct {
	client *binance.Client
	writer writer.MarketDataWriter
}

// NewBinanceClient creates a client for the public Binance market data API.
// No credentials are needed for historical klines.
func NewBinanceClient() (Provider, error) {
	return &BinanceClient{
		client: binance.NewClient("", ""),
		writer: nil,
	}, nil
}

func (c *BinanceClient) ConfigWriter(w writer.MarketDataWriter) {
	c.writer = w
}

// Download pages through the klines endpoint until the end of the range and
// streams every bar into the writer. Binance timestamps are milliseconds.
func (c *BinanceClient) Download(ctx context.Context, ticker string, startDate time.Time, endDate time.Time, multiplier int, timespan models.Timespan, onProgress OnDownloadProgress) (path string, err error) {
	interval, err := binanceInterval(timespan, multiplier)
	if err != nil {
		return "", err
	}

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

	startMillis := startDate.UnixMilli()
	endMillis := endDate.UnixMilli()
	currentStart := startMillis

	for {
		klines, fetchErr := c.client.NewKlinesService().
			Symbol(ticker).
			Interval(interval).
			StartTime(currentStart).
			EndTime(endMillis).
			Do(ctx)
		if fetchErr != nil {
			return "", errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, fetchErr, "failed to fetch klines for %s", ticker)
		}

		if onProgress != nil {
			onProgress(float64(currentStart-startMillis), float64(endMillis-startMillis), fmt.Sprintf("Downloading %s klines", ticker))
		}

		if err = c.writeKlines(ticker, klines); err != nil {
			return "", err
		}

		// A short page means there is no more data in the range
		if len(klines) < binancePageSize {
			break
		}

		// Resume from just past the last close time to avoid duplicates
		currentStart = klines[len(klines)-1].CloseTime + 1
		if currentStart >= endMillis {
			break
		}
	}

	outputPath, err := c.writer.Finalize()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to finalize writer", err)
	}

	return outputPath, nil
}

// writeKlines converts one page of klines into bars and writes them. The
// bar's timestamp is the kline's open time.
func (c *BinanceClient) writeKlines(ticker string, klines []*binance.Kline) error {
	for _, k := range klines {
		open, err := strconv.ParseFloat(k.Open, 64)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "bad open price %q for %s", k.Open, ticker)
		}

		high, err := strconv.ParseFloat(k.High, 64)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "bad high price %q for %s", k.High, ticker)
		}

		low, err := strconv.ParseFloat(k.Low, 64)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "bad low price %q for %s", k.Low, ticker)
		}

		closePrice, err := strconv.ParseFloat(k.Close, 64)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "bad close price %q for %s", k.Close, ticker)
		}

		volume, err := strconv.ParseFloat(k.Volume, 64)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "bad volume %q for %s", k.Volume, ticker)
		}

		bar := types.MarketData{
			Id:     "",
			Symbol: ticker,
			Time:   time.UnixMilli(k.OpenTime),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: volume,
		}

		if err := c.writer.Write(bar); err != nil {
			return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to write bar", err)
		}
	}

	return nil
}

// binanceInterval maps a polygon-style timespan and multiplier to a Binance
// interval string (1m, 3m, 5m, 15m, 30m, 1h, 2h, 4h, 6h, 8h, 12h, 1d, 3d,
// 1w, 1M).
func binanceInterval(timespan models.Timespan, multiplier int) (string, error) {
	switch timespan {
	case models.Minute:
		return fmt.Sprintf("%dm", multiplier), nil
	case models.Hour:
		return fmt.Sprintf("%dh", multiplier), nil
	case models.Day:
		return fmt.Sprintf("%dd", multiplier), nil
	case models.Week:
		if multiplier == 1 {
			return "1w", nil
		}

		return "", errors.Newf(errors.ErrCodeInvalidTimespan, "unsupported weekly multiplier: %d", multiplier)
	case models.Month:
		if multiplier == 1 {
			return "1M", nil
		}

		return "", errors.Newf(errors.ErrCodeInvalidTimespan, "unsupported monthly multiplier: %d", multiplier)
	default:
		return "", errors.Newf(errors.ErrCodeInvalidTimespan, "unsupported timespan: %s", timespan)
	}
}
