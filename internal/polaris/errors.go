package polaris

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorDetail is the nested error object some Polaris endpoints return:
// { "error": { "code": "AlreadyExists", "message": "..." } }
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is a Polaris API error payload. Endpoints are inconsistent:
// some put the message at the top level ({ "code": 400, "message": "..." }),
// others nest it under "error".
type ErrorResponse struct {
	Message string       `json:"message"`
	Detail  *ErrorDetail `json:"error"`
}

// errorMessage extracts the most specific message available: the top-level
// message, then the nested message, then the nested code.
func (e *ErrorResponse) errorMessage() string {
	if !isBlank(e.Message) {
		return e.Message
	}
	if e.Detail != nil {
		if !isBlank(e.Detail.Message) {
			return e.Detail.Message
		}
		if !isBlank(e.Detail.Code) {
			return e.Detail.Code
		}
	}
	return ""
}

// APIError is a non-2xx response from the Polaris API.
type APIError struct {
	StatusCode int
	Response   *ErrorResponse
}

func (e *APIError) Error() string {
	msg := ""
	if e.Response != nil {
		msg = e.Response.errorMessage()
	}
	if msg == "" && e.StatusCode == http.StatusNotFound {
		msg = "Not found"
	}
	if msg == "" {
		return fmt.Sprintf("polaris API error %d", e.StatusCode)
	}
	return fmt.Sprintf("polaris API error %d: %s", e.StatusCode, msg)
}

// IsNotFound reports whether err is a Polaris 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
