package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/moznion/go-optional"
	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/econdata/internal/config"
	"github.com/rxtech-lab/econdata/internal/logger"
	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/econdata"
	"github.com/rxtech-lab/econdata/pkg/marketdata"
)

// loadConfig reads the YAML config file, falling back to built-in defaults
// plus environment API keys when the file does not exist.
func loadConfig(path string) (config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Parse(nil)
	}

	return config.Load(path)
}

// newEconClient builds the economic data client from the loaded config.
func newEconClient(cfg config.Config, log *logger.Logger) (*econdata.Client, error) {
	return econdata.NewClient(econdata.ClientConfig{
		ProviderType: econdata.ProviderFred,
		WriterType:   econdata.WriterType(cfg.Writer),
		FredApiKey:   cfg.FredApiKey,
	}, log)
}

// lookbackRange converts a lookback in days to an explicit date range ending
// now.
func lookbackRange(days int) (optional.Option[time.Time], optional.Option[time.Time]) {
	end := time.Now()

	return optional.Some(end.AddDate(0, 0, -days)), optional.Some(end)
}

// updateBonds fetches and persists the treasury yield series.
func updateBonds(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	client, err := newEconClient(cfg, log)
	if err != nil {
		return err
	}

	start, end := lookbackRange(cfg.Bonds.LookbackDays)
	results := client.FetchSeriesBatch(ctx, cfg.Bonds.Requests(), start, end)

	paths, err := client.PersistSeriesBatch(results, cfg.DataDir)
	if err != nil {
		return err
	}

	fmt.Printf("bonds: %d series written to %s\n", len(paths), cfg.DataDir)

	return nil
}

// updateIndicators fetches the macroeconomic indicators, appends the derived
// inflation and GDP series and persists the batch.
func updateIndicators(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	client, err := newEconClient(cfg, log)
	if err != nil {
		return err
	}

	requests := cfg.Indicators.Requests()
	if requests == nil {
		requests = econdata.DefaultIndicators()
	}

	start, end := lookbackRange(cfg.Indicators.LookbackDays)
	results := client.FetchSeriesBatch(ctx, requests, start, end)
	econdata.AppendDerivedIndicators(results)

	paths, err := client.PersistSeriesBatch(results, cfg.DataDir)
	if err != nil {
		return err
	}

	fmt.Printf("indicators: %d series written to %s\n", len(paths), cfg.DataDir)

	return nil
}

// updateMarket downloads OHLCV bars for the configured index tickers.
func updateMarket(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	client, err := marketdata.NewClient(marketdata.ClientConfig{
		ProviderType:  marketdata.ProviderPolygon,
		WriterType:    marketdata.WriterType(cfg.Writer),
		DataPath:      cfg.DataDir,
		PolygonApiKey: cfg.PolygonApiKey,
	}, log, nil)
	if err != nil {
		return err
	}

	end := time.Now()
	start := end.AddDate(0, 0, -cfg.Market.LookbackDays)

	paths := client.DownloadBatch(ctx, cfg.Market.Tickers, start, end, marketdata.Timespan(cfg.Market.Interval))
	if len(paths) == 0 {
		return fmt.Errorf("no tickers downloaded")
	}

	fmt.Printf("market: %d tickers written to %s\n", len(paths), cfg.DataDir)

	return nil
}

func updateAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	runBonds := cmd.Bool("bonds")
	runIndicators := cmd.Bool("indicators")
	runMarket := cmd.Bool("market")

	// No section flags means everything, same as --all
	if cmd.Bool("all") || (!runBonds && !runIndicators && !runMarket) {
		runBonds, runIndicators, runMarket = true, true, true
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	sections := []struct {
		name    string
		enabled bool
		run     func(context.Context, config.Config, *logger.Logger) error
	}{
		{name: "bonds", enabled: runBonds, run: updateBonds},
		{name: "indicators", enabled: runIndicators, run: updateIndicators},
		{name: "market", enabled: runMarket, run: updateMarket},
	}

	var failed []string

	for _, section := range sections {
		if !section.enabled {
			continue
		}

		if err := section.run(ctx, cfg, appLogger); err != nil {
			fmt.Printf("%s: failed: %v\n", section.name, err)
			failed = append(failed, section.name)
		}
	}

	if len(failed) > 0 {
		return cli.Exit(fmt.Sprintf("update failed for: %v", failed), 1)
	}

	return nil
}

func curveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	client, err := newEconClient(cfg, appLogger)
	if err != nil {
		return err
	}

	referenceDate := optional.None[time.Time]()
	if date := cmd.Timestamp("date"); !date.IsZero() {
		referenceDate = optional.Some(date)
	}

	snapshot, err := client.FetchYieldCurveSnapshot(ctx, nil, referenceDate)
	if err != nil {
		return err
	}

	fmt.Printf("Yield curve on %s\n", snapshot.ReferenceDate.Format(types.DateLayout))

	for _, point := range snapshot.Points {
		if point.Yield.IsSome() {
			fmt.Printf("  %-8s %6.2f%%\n", point.Maturity, point.Yield.Unwrap())
		} else {
			fmt.Printf("  %-8s %7s\n", point.Maturity, "n/a")
		}
	}

	return nil
}

func providersAction(ctx context.Context, cmd *cli.Command) error {
	providers := econdata.GetSupportedProviders()
	sort.Strings(providers)

	for _, name := range providers {
		info, err := econdata.GetProviderInfo(name)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s): %s\n", info.Name, info.DisplayName, info.Description)
	}

	return nil
}

func main() {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the YAML configuration file",
		Value:   "econdata.yaml",
	}

	cmd := &cli.Command{
		Name:  "econdata",
		Usage: "Collect treasury yields, economic indicators and market data",
		Commands: []*cli.Command{
			{
				Name:  "update",
				Usage: "Fetch the configured data sections and persist them",
				Flags: []cli.Flag{
					configFlag,
					&cli.BoolFlag{
						Name:  "bonds",
						Usage: "Update treasury yield series",
					},
					&cli.BoolFlag{
						Name:  "indicators",
						Usage: "Update macroeconomic indicator series",
					},
					&cli.BoolFlag{
						Name:  "market",
						Usage: "Update index OHLCV data",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Update every section (default when no section flag is given)",
					},
				},
				Action: updateAction,
			},
			{
				Name:  "curve",
				Usage: "Print the treasury yield curve at a reference date",
				Flags: []cli.Flag{
					configFlag,
					&cli.TimestampFlag{
						Name:    "date",
						Aliases: []string{"d"},
						Usage:   "Reference date in `YYYY-MM-DD` format. Defaults to the latest available date.",
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02"},
						},
					},
				},
				Action: curveAction,
			},
			{
				Name:   "providers",
				Usage:  "List the supported economic data providers",
				Action: providersAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
