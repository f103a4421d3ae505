package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	arcerr "github.com/faithfularchive/arcon/pkg/errors"
)

// ErrorOutput represents a structured error for JSON output.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Cause    string `json:"cause,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// FormatError formats an error for display.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	if format == FormatJSON {
		return formatErrorJSON(w, err)
	}
	return formatErrorText(w, err)
}

// formatErrorJSON outputs error in JSON format.
func formatErrorJSON(w io.Writer, err error) error {
	detail := ErrorDetail{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		ExitCode: arcerr.ExitCode(err),
	}

	var we *arcerr.WalletError
	if errors.As(err, &we) {
		detail.Code = we.Kind.String()
		detail.Message = we.Message
		if we.Cause != nil {
			detail.Cause = we.Cause.Error()
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ErrorOutput{Error: detail})
}

// formatErrorText outputs error in text format.
func formatErrorText(w io.Writer, err error) error {
	var we *arcerr.WalletError
	if errors.As(err, &we) {
		if _, werr := fmt.Fprintf(w, "Error [%s]: %s\n", we.Kind, we.Message); werr != nil {
			return werr
		}
		if we.Cause != nil {
			_, werr := fmt.Fprintf(w, "  caused by: %s\n", we.Cause)
			return werr
		}
		return nil
	}

	_, werr := fmt.Fprintf(w, "Error: %s\n", err.Error())
	return werr
}

// FormatSuccess formats a success message.
func FormatSuccess(w io.Writer, message string, format Format) error {
	if format == FormatJSON {
		output := map[string]string{"status": "success", "message": message}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}
	_, err := fmt.Fprintln(w, message)
	return err
}
