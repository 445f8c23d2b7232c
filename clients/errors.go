package clients

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError is a non-2xx answer from one of the banking services.
type APIError struct {
	Service string
	Method  string
	Path    string
	Status  int
	// Message is the service supplied explanation, empty when the body had none.
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s %s: status %d", e.Service, e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s %s: status %d: %s", e.Service, e.Method, e.Path, e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from a banking service.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is a 401 from a banking service.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// MessageOr returns the service's own error message when it sent one, and fallback otherwise.
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// errorBody fields stay raw and are decoded one at a time.
type errorBody struct {
	Error            json.RawMessage `json:"error"`
	Message          json.RawMessage `json:"message"`
	ValidationErrors json.RawMessage `json:"validationErrors"`
}

func rawString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// extractMessage looks for "error", then "message", then the first validation error.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal([]byte(trimmed), &eb); err != nil {
		return ""
	}
	if msg := rawString(eb.Error); msg != "" {
		return msg
	}
	if msg := rawString(eb.Message); msg != "" {
		return msg
	}
	var fieldErrs map[string]json.RawMessage
	if len(eb.ValidationErrors) > 0 && json.Unmarshal(eb.ValidationErrors, &fieldErrs) == nil {
		fields := make([]string, 0, len(fieldErrs))
		for field := range fieldErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			if msg := rawString(fieldErrs[field]); msg != "" {
				return msg
			}
		}
	}
	return ""
}
