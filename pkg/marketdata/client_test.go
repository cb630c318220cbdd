package marketdata

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rxtech-lab/econdata/internal/logger"
	"github.com/rxtech-lab/econdata/mocks"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

type MarketClientTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProvider *mocks.MockProvider
	client       *Client
}

func TestMarketClientSuite(t *testing.T) {
	suite.Run(t, new(MarketClientTestSuite))
}

func (suite *MarketClientTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProvider = mocks.NewMockProvider(suite.ctrl)

	suite.client = &Client{
		provider: suite.mockProvider,
		config: ClientConfig{
			ProviderType:  ProviderPolygon,
			WriterType:    WriterCSV,
			DataPath:      suite.T().TempDir(),
			PolygonApiKey: "test-key",
		},
		validate: validator.New(),
		logger:   logger.NewNopLogger(),
	}
}

func (suite *MarketClientTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MarketClientTestSuite) TestNewClientRejectsInvalidConfig() {
	_, err := NewClient(ClientConfig{
		ProviderType: ProviderPolygon,
		WriterType:   WriterCSV,
		DataPath:     "",
	}, nil, nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *MarketClientTestSuite) TestNewClientRejectsPolygonWithoutKey() {
	_, err := NewClient(ClientConfig{
		ProviderType: ProviderPolygon,
		WriterType:   WriterCSV,
		DataPath:     suite.T().TempDir(),
	}, nil, nil)
	suite.Error(err)
}

func (suite *MarketClientTestSuite) TestDownloadRejectsInvertedDateRange() {
	_, err := suite.client.Download(context.Background(), DownloadParams{
		Ticker:    "I:SPX",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Timespan:  TimespanOneDay,
	})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *MarketClientTestSuite) TestDownloadBatchIsolatesFailures() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	suite.mockProvider.EXPECT().ConfigWriter(gomock.Any()).Times(3)

	suite.mockProvider.EXPECT().
		Download(gomock.Any(), "I:SPX", start, end, 1, gomock.Any(), gomock.Any()).
		Return("/data/SPX_daily.csv", nil).
		Times(1)

	suite.mockProvider.EXPECT().
		Download(gomock.Any(), "I:BAD", start, end, 1, gomock.Any(), gomock.Any()).
		Return("", errors.New(errors.ErrCodeMarketDataFetchFailed, "ticker not found")).
		Times(1)

	suite.mockProvider.EXPECT().
		Download(gomock.Any(), "I:VIX", start, end, 1, gomock.Any(), gomock.Any()).
		Return("/data/VIX_daily.csv", nil).
		Times(1)

	paths := suite.client.DownloadBatch(context.Background(), []string{"I:SPX", "I:BAD", "I:VIX"}, start, end, TimespanOneDay)

	suite.Len(paths, 2)
	suite.Equal("/data/SPX_daily.csv", paths["I:SPX"])
	suite.Equal("/data/VIX_daily.csv", paths["I:VIX"])
	suite.NotContains(paths, "I:BAD")
}

func (suite *MarketClientTestSuite) TestDownloadBatchNilTickersUsesDefaults() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	suite.mockProvider.EXPECT().ConfigWriter(gomock.Any()).Times(len(DefaultTickers()))
	suite.mockProvider.EXPECT().
		Download(gomock.Any(), gomock.Any(), start, end, 1, gomock.Any(), gomock.Any()).
		Return("/data/out.csv", nil).
		Times(len(DefaultTickers()))

	paths := suite.client.DownloadBatch(context.Background(), nil, start, end, TimespanOneDay)
	suite.Len(paths, len(DefaultTickers()))
	suite.Contains(paths, "I:SPX")
	suite.Contains(paths, "I:VIX")
}

func TestCleanTicker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "I:SPX", want: "SPX"},
		{in: "I:COMP", want: "COMP"},
		{in: "BTCUSDT", want: "BTCUSDT"},
		{in: "BRK.B", want: "BRK_B"},
	}

	for _, tt := range tests {
		if got := cleanTicker(tt.in); got != tt.want {
			t.Errorf("cleanTicker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimespanSuffix(t *testing.T) {
	if got := timespanSuffix(TimespanOneDay); got != "daily" {
		t.Errorf("timespanSuffix(1d) = %q, want daily", got)
	}

	if got := timespanSuffix(TimespanOneHour); got != "1h" {
		t.Errorf("timespanSuffix(1h) = %q, want 1h", got)
	}
}
