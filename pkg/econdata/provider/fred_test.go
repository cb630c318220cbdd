package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/econdata/pkg/errors"
)

type FredClientTestSuite struct {
	suite.Suite
}

func TestFredClientSuite(t *testing.T) {
	suite.Run(t, new(FredClientTestSuite))
}

func (suite *FredClientTestSuite) TestNewFredClientRequiresApiKey() {
	client, err := NewFredClient("")
	suite.Nil(client)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingCredentials))
}

func (suite *FredClientTestSuite) TestGetSeries() {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"series_id":         r.URL.Query().Get("series_id"),
			"api_key":           r.URL.Query().Get("api_key"),
			"file_type":         r.URL.Query().Get("file_type"),
			"observation_start": r.URL.Query().Get("observation_start"),
			"observation_end":   r.URL.Query().Get("observation_end"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"observations": [
				{"date": "2024-01-01", "value": "4.0"},
				{"date": "2024-01-02", "value": "."},
				{"date": "2024-01-03", "value": "4.1"}
			]
		}`))
	}))
	defer server.Close()

	client, err := NewFredClientWithBaseURL("test-key", server.URL, server.Client())
	suite.Require().NoError(err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	observations, err := client.GetSeries(context.Background(), "DGS10", optional.Some(start), optional.Some(end))
	suite.NoError(err)
	suite.Len(observations, 3)

	suite.Equal("DGS10", gotQuery["series_id"])
	suite.Equal("test-key", gotQuery["api_key"])
	suite.Equal("json", gotQuery["file_type"])
	suite.Equal("2024-01-01", gotQuery["observation_start"])
	suite.Equal("2024-01-31", gotQuery["observation_end"])

	suite.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), observations[0].Date)
	suite.Equal(4.0, observations[0].Value.Unwrap())

	// FRED marks missing publishing days with "."
	suite.True(observations[1].Value.IsNone())
	suite.Equal(4.1, observations[2].Value.Unwrap())
}

func (suite *FredClientTestSuite) TestGetSeriesFullHistoryOmitsRange() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Empty(r.URL.Query().Get("observation_start"))
		suite.Empty(r.URL.Query().Get("observation_end"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"observations": []}`))
	}))
	defer server.Close()

	client, err := NewFredClientWithBaseURL("test-key", server.URL, server.Client())
	suite.Require().NoError(err)

	observations, err := client.GetSeries(context.Background(), "DGS10", optional.None[time.Time](), optional.None[time.Time]())
	suite.NoError(err)
	suite.Empty(observations)
}

func (suite *FredClientTestSuite) TestGetSeriesUnknownSeries() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code": 400, "error_message": "The series does not exist."}`))
	}))
	defer server.Close()

	client, err := NewFredClientWithBaseURL("test-key", server.URL, server.Client())
	suite.Require().NoError(err)

	observations, err := client.GetSeries(context.Background(), "NOPE", optional.None[time.Time](), optional.None[time.Time]())
	suite.Error(err)
	suite.Nil(observations)
	suite.True(errors.HasCode(err, errors.ErrCodeSeriesNotFound))
}

func (suite *FredClientTestSuite) TestGetSeriesServerError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error_code": 500, "error_message": "internal"}`))
	}))
	defer server.Close()

	client, err := NewFredClientWithBaseURL("test-key", server.URL, server.Client())
	suite.Require().NoError(err)

	_, err = client.GetSeries(context.Background(), "DGS10", optional.None[time.Time](), optional.None[time.Time]())
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSeriesFetchFailed))
}

func (suite *FredClientTestSuite) TestGetSeriesBadValue() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"observations": [{"date": "2024-01-01", "value": "not-a-number"}]}`))
	}))
	defer server.Close()

	client, err := NewFredClientWithBaseURL("test-key", server.URL, server.Client())
	suite.Require().NoError(err)

	_, err = client.GetSeries(context.Background(), "DGS10", optional.None[time.Time](), optional.None[time.Time]())
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSeriesParseFailed))
}

func (suite *FredClientTestSuite) TestNewEconomicProviderFactory() {
	provider, err := NewEconomicProvider(ProviderFred, "test-key")
	suite.NoError(err)
	suite.NotNil(provider)

	_, err = NewEconomicProvider(ProviderFred, 42)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))

	_, err = NewEconomicProvider(ProviderType("unknown"), nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidProvider))
}
