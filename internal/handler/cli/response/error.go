package response

import (
	"errors"

	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/domain/employee"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/storage"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/validator"
)

const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeMissingSource  = "MISSING_SOURCE"
	CodeIOFailure      = "IO_FAILURE"
	CodeInvalidPath    = "INVALID_PATH"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeMalformedInput = "MALFORMED_RECORD"
)

// Describe maps domain errors to a user-facing code and message.
func Describe(err error) ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ErrorDetail{
			Code:    CodeInvalidInput,
			Message: "Invalid input. Ensure dates are in YYYY-MM-DD format and fields contain no commas.",
			Details: validationErrs.ToMap(),
		}
	}

	switch {
	// Candidate domain errors
	case errors.Is(err, candidate.ErrInvalidInput):
		return ErrorDetail{Code: CodeInvalidInput, Message: "Invalid input. Ensure dates are in YYYY-MM-DD format."}
	case errors.Is(err, candidate.ErrLogUnavailable):
		return ErrorDetail{Code: CodeIOFailure, Message: "Could not write to the log: " + err.Error()}

	// Employee domain errors
	case errors.Is(err, employee.ErrMissingSource):
		return ErrorDetail{Code: CodeMissingSource, Message: "File not found. Please verify the path and try again: " + err.Error()}
	case errors.Is(err, employee.ErrSourceUnreadable):
		return ErrorDetail{Code: CodeIOFailure, Message: "Failed to read file: " + err.Error()}
	case errors.Is(err, employee.ErrMalformedRecord):
		return ErrorDetail{Code: CodeMalformedInput, Message: err.Error()}

	// Storage errors
	case errors.Is(err, storage.ErrInvalidPath):
		return ErrorDetail{Code: CodeInvalidPath, Message: err.Error()}

	// Default
	default:
		return ErrorDetail{Code: CodeInternalError, Message: "An unexpected error occurred: " + err.Error()}
	}
}
