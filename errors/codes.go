package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeInvalidFixture indicates fixture data failed to parse or validate.
	ErrCodeInvalidFixture ErrorCode = "INVALID_FIXTURE"
	// ErrCodeConfig indicates the configuration could not be loaded or is invalid.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
)

// Lookup errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Execution errors
const (
	// ErrCodeCanceled indicates the operation was canceled before it finished.
	ErrCodeCanceled ErrorCode = "CANCELED"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Process exit statuses, following the BSD sysexits convention.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
	ExitConfig   = 78
	ExitCanceled = 130
)

var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidInput:   ExitUsage,
	ErrCodeMissingField:   ExitUsage,
	ErrCodeInvalidFormat:  ExitUsage,
	ErrCodeInvalidFixture: ExitDataErr,
	ErrCodeConfig:         ExitConfig,
	ErrCodeNotFound:       ExitNoInput,
	ErrCodeCanceled:       ExitCanceled,
	ErrCodeInternal:       ExitSoftware,
}

// ExitCodeFor returns the process exit status for code.
// Unknown codes map to ExitFailure.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return ExitFailure
}
