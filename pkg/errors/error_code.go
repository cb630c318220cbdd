package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeMissingCredentials   ErrorCode = 102
	ErrCodeInvalidDateRange     ErrorCode = 103
	ErrCodeInvalidTimespan      ErrorCode = 104
	ErrCodeInvalidProvider      ErrorCode = 105
	ErrCodeInvalidWriter        ErrorCode = 106

	// Series fetch errors (200-299)
	ErrCodeSeriesFetchFailed    ErrorCode = 200
	ErrCodeSeriesNotFound       ErrorCode = 201
	ErrCodeEmptySeries          ErrorCode = 202
	ErrCodeSnapshotAnchorFailed ErrorCode = 203
	ErrCodeSeriesParseFailed    ErrorCode = 204

	// Persistence errors (300-399)
	ErrCodeWriteFailed     ErrorCode = 300
	ErrCodeOutputPathError ErrorCode = 301

	// Market data errors (400-499)
	ErrCodeMarketDataFetchFailed ErrorCode = 400
	ErrCodeMarketDataWriteFailed ErrorCode = 401
	ErrCodeMarketDataParseFailed ErrorCode = 402
)
