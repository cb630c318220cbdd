package writer

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/econdata/internal/types"
)

type CSVWriterTestSuite struct {
	suite.Suite
	tempDir string
}

func TestCSVWriterSuite(t *testing.T) {
	suite.Run(t, new(CSVWriterTestSuite))
}

func (suite *CSVWriterTestSuite) SetupTest() {
	tempDir, err := os.MkdirTemp("", "csv-writer-test")
	suite.Require().NoError(err)
	suite.tempDir = tempDir
}

func (suite *CSVWriterTestSuite) TearDownTest() {
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func (suite *CSVWriterTestSuite) readCSV(path string) [][]string {
	file, err := os.Open(path)
	suite.Require().NoError(err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	suite.Require().NoError(err)

	return records
}

func testResult() types.SeriesResult {
	return types.SeriesResult{
		Name:     "Treasury_10Y",
		SeriesID: "DGS10",
		Observations: []types.Observation{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: optional.Some(4.0)},
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Value: optional.None[float64]()},
			{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Value: optional.Some(4.1)},
		},
	}
}

func (suite *CSVWriterTestSuite) TestInitializeCreatesDirectory() {
	outputDir := filepath.Join(suite.tempDir, "bonds", "nested")
	w := NewCSVWriter(outputDir)

	suite.NoError(w.Initialize())

	info, err := os.Stat(outputDir)
	suite.NoError(err)
	suite.True(info.IsDir())
}

func (suite *CSVWriterTestSuite) TestWriteRoundTrip() {
	w := NewCSVWriter(suite.tempDir)
	suite.Require().NoError(w.Initialize())

	result := testResult()
	suite.Require().NoError(w.Write(result))

	paths, err := w.Finalize()
	suite.NoError(err)
	suite.Len(paths, 1)
	suite.Equal(filepath.Join(suite.tempDir, "Treasury_10Y.csv"), paths[0])

	records := suite.readCSV(paths[0])
	suite.Equal([]string{"date", "value", "series_id", "name"}, records[0])
	suite.Equal([]string{"2024-01-01", "4", "DGS10", "Treasury_10Y"}, records[1])
	suite.Equal([]string{"2024-01-02", "", "DGS10", "Treasury_10Y"}, records[2])
	suite.Equal([]string{"2024-01-03", "4.1", "DGS10", "Treasury_10Y"}, records[3])
}

func (suite *CSVWriterTestSuite) TestWriteOverwritesExistingFile() {
	w := NewCSVWriter(suite.tempDir)
	suite.Require().NoError(w.Initialize())

	stale := filepath.Join(suite.tempDir, "Treasury_10Y.csv")
	suite.Require().NoError(os.WriteFile(stale, []byte("stale,content\n1,2\n3,4\n"), 0644))

	suite.Require().NoError(w.Write(testResult()))

	records := suite.readCSV(stale)
	// Header plus three observations; stale rows must be gone
	suite.Len(records, 4)
	suite.Equal([]string{"date", "value", "series_id", "name"}, records[0])
}

func (suite *CSVWriterTestSuite) TestFinalizePreservesWriteOrder() {
	w := NewCSVWriter(suite.tempDir)
	suite.Require().NoError(w.Initialize())

	first := testResult()
	second := testResult()
	second.Name = "Treasury_2Y"
	second.SeriesID = "DGS2"

	suite.Require().NoError(w.Write(first))
	suite.Require().NoError(w.Write(second))

	paths, err := w.Finalize()
	suite.NoError(err)
	suite.Equal([]string{
		filepath.Join(suite.tempDir, "Treasury_10Y.csv"),
		filepath.Join(suite.tempDir, "Treasury_2Y.csv"),
	}, paths)

	suite.NoError(w.Close())
}
