package cli

import (
	"encoding/json"
	"io"

	"github.com/JosNun/displayreset/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine
// parsing. All --json output uses this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigInvalid   = "CONFIG_INVALID"
	ErrCodeDisplayNotFound = "DISPLAY_NOT_FOUND"
	ErrCodeProbeFailed     = "PROBE_FAILED"
	ErrCodeToolMissing     = "TOOL_MISSING"
	ErrCodeTxnFailed       = "TXN_FAILED"
	ErrCodeExecFailed      = "EXEC_FAILED"
	ErrCodeUnknown         = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONOutcome writes an operation outcome; success mirrors the outcome.
func WriteJSONOutcome(w io.Writer, success bool, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: success,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if drErr, ok := err.(*errors.Error); ok {
		return &JSONError{
			Code:       mapErrorCode(drErr.Code),
			Message:    drErr.Message,
			Suggestion: drErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(code string) string {
	switch code {
	case errors.ErrConfig:
		return ErrCodeConfigInvalid
	case errors.ErrDisplay:
		return ErrCodeDisplayNotFound
	case errors.ErrProbe:
		return ErrCodeProbeFailed
	case errors.ErrTool:
		return ErrCodeToolMissing
	case errors.ErrTxn:
		return ErrCodeTxnFailed
	case errors.ErrExec:
		return ErrCodeExecFailed
	default:
		return ErrCodeUnknown
	}
}
