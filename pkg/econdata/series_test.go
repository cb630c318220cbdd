package econdata

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rxtech-lab/econdata/internal/logger"
	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/mocks"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

type SeriesBatchTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProvider *mocks.MockEconomicProvider
	client       *Client
	tempDir      string
}

func TestSeriesBatchSuite(t *testing.T) {
	suite.Run(t, new(SeriesBatchTestSuite))
}

func (suite *SeriesBatchTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProvider = mocks.NewMockEconomicProvider(suite.ctrl)

	tempDir, err := os.MkdirTemp("", "econdata-series-test")
	suite.Require().NoError(err)
	suite.tempDir = tempDir

	suite.client = &Client{
		provider: suite.mockProvider,
		config: ClientConfig{
			ProviderType: ProviderFred,
			WriterType:   WriterCSV,
			FredApiKey:   "test-key",
		},
		validate: validator.New(),
		logger:   logger.NewNopLogger(),
	}
}

func (suite *SeriesBatchTestSuite) TearDownTest() {
	suite.ctrl.Finish()

	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func obsAt(y int, m time.Month, d int, value float64) types.Observation {
	return types.Observation{
		Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Value: optional.Some(value),
	}
}

func (suite *SeriesBatchTestSuite) TestFetchSeriesBatchPartialSuccess() {
	requests := []types.SeriesRequest{
		{Name: "Treasury_10Y", SeriesID: "DGS10"},
		{Name: "Broken", SeriesID: "BAD"},
		{Name: "Empty", SeriesID: "EMPTY"},
	}

	suite.mockProvider.EXPECT().
		GetSeries(gomock.Any(), "DGS10", gomock.Any(), gomock.Any()).
		Return([]types.Observation{obsAt(2024, 1, 1, 4.0), obsAt(2024, 1, 2, 4.1)}, nil).
		Times(1)

	suite.mockProvider.EXPECT().
		GetSeries(gomock.Any(), "BAD", gomock.Any(), gomock.Any()).
		Return(nil, errors.New(errors.ErrCodeSeriesNotFound, "series BAD: does not exist")).
		Times(1)

	suite.mockProvider.EXPECT().
		GetSeries(gomock.Any(), "EMPTY", gomock.Any(), gomock.Any()).
		Return([]types.Observation{}, nil).
		Times(1)

	results := suite.client.FetchSeriesBatch(context.Background(), requests, optional.None[time.Time](), optional.None[time.Time]())

	suite.Len(results, 1)
	suite.Contains(results, "Treasury_10Y")
	suite.Equal("DGS10", results["Treasury_10Y"].SeriesID)
	suite.Len(results["Treasury_10Y"].Observations, 2)
}

func (suite *SeriesBatchTestSuite) TestFetchSeriesBatchEmptyRequests() {
	results := suite.client.FetchSeriesBatch(context.Background(), []types.SeriesRequest{}, optional.None[time.Time](), optional.None[time.Time]())
	suite.Empty(results)
}

func (suite *SeriesBatchTestSuite) TestFetchSeriesBatchNilRequestsUsesDefaults() {
	suite.mockProvider.EXPECT().
		GetSeries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]types.Observation{obsAt(2024, 1, 1, 1.0)}, nil).
		Times(len(DefaultBondSeries()))

	results := suite.client.FetchSeriesBatch(context.Background(), nil, optional.None[time.Time](), optional.None[time.Time]())

	suite.Len(results, len(DefaultBondSeries()))
	suite.Contains(results, "Treasury_10Y")
	suite.Contains(results, "Yield_Curve")
}

func (suite *SeriesBatchTestSuite) TestFetchSeriesBatchDefaultDateRange() {
	var gotStart, gotEnd optional.Option[time.Time]

	suite.mockProvider.EXPECT().
		GetSeries(gomock.Any(), "DGS10", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, start, end optional.Option[time.Time]) ([]types.Observation, error) {
			gotStart = start
			gotEnd = end

			return []types.Observation{obsAt(2024, 1, 1, 4.0)}, nil
		}).
		Times(1)

	requests := []types.SeriesRequest{{Name: "Treasury_10Y", SeriesID: "DGS10"}}
	suite.client.FetchSeriesBatch(context.Background(), requests, optional.None[time.Time](), optional.None[time.Time]())

	suite.True(gotStart.IsSome())
	suite.True(gotEnd.IsSome())

	// Default window is one year back from the end date
	expectedStart := gotEnd.Unwrap().AddDate(0, 0, -DefaultBondLookbackDays)
	suite.Equal(expectedStart, gotStart.Unwrap())
	suite.WithinDuration(time.Now(), gotEnd.Unwrap(), time.Minute)
}

func (suite *SeriesBatchTestSuite) TestFetchSeriesBatchSharesExplicitDateRange() {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	requests := []types.SeriesRequest{
		{Name: "Treasury_10Y", SeriesID: "DGS10"},
		{Name: "Treasury_2Y", SeriesID: "DGS2"},
	}

	for _, request := range requests {
		suite.mockProvider.EXPECT().
			GetSeries(gomock.Any(), request.SeriesID, optional.Some(start), optional.Some(end)).
			Return([]types.Observation{obsAt(2024, 1, 1, 4.0)}, nil).
			Times(1)
	}

	results := suite.client.FetchSeriesBatch(context.Background(), requests, optional.Some(start), optional.Some(end))
	suite.Len(results, 2)
}

func (suite *SeriesBatchTestSuite) TestPersistSeriesBatchRoundTrip() {
	results := map[string]types.SeriesResult{
		"Treasury_10Y": {
			Name:     "Treasury_10Y",
			SeriesID: "DGS10",
			Observations: []types.Observation{
				obsAt(2024, 1, 1, 4.0),
				obsAt(2024, 1, 3, 4.1),
			},
		},
		"Treasury_2Y": {
			Name:     "Treasury_2Y",
			SeriesID: "DGS2",
			Observations: []types.Observation{
				obsAt(2024, 1, 1, 4.3),
			},
		},
	}

	paths, err := suite.client.PersistSeriesBatch(results, suite.tempDir)
	suite.NoError(err)

	// Paths are sorted by series name for stable output
	suite.Equal([]string{
		filepath.Join(suite.tempDir, "Treasury_10Y.csv"),
		filepath.Join(suite.tempDir, "Treasury_2Y.csv"),
	}, paths)

	file, err := os.Open(paths[0])
	suite.Require().NoError(err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	suite.Require().NoError(err)
	suite.Equal([]string{"date", "value", "series_id", "name"}, records[0])
	suite.Equal([]string{"2024-01-01", "4", "DGS10", "Treasury_10Y"}, records[1])
	suite.Equal([]string{"2024-01-03", "4.1", "DGS10", "Treasury_10Y"}, records[2])
}

func (suite *SeriesBatchTestSuite) TestPersistSeriesBatchEmptyResults() {
	paths, err := suite.client.PersistSeriesBatch(map[string]types.SeriesResult{}, suite.tempDir)
	suite.NoError(err)
	suite.Empty(paths)
}
