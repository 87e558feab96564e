package response

import (
	"encoding/json"
	"io"
)

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w io.Writer, payload Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		fallback := Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "ENCODING_ERROR",
				Message: "Failed to encode response",
			},
		}
		_ = enc.Encode(fallback)
		return err
	}
	return nil
}

// Success writes data in the JSON envelope.
func Success(w io.Writer, data interface{}) error {
	return writeJSON(w, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage writes data with a human-readable message alongside.
func SuccessWithMessage(w io.Writer, message string, data interface{}) error {
	return writeJSON(w, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Failure writes err, described by Describe, in the JSON envelope.
func Failure(w io.Writer, err error) error {
	detail := Describe(err)
	return writeJSON(w, Response{
		Success: false,
		Error:   &detail,
	})
}
