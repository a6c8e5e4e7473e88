// Package errors defines the error taxonomy shared by the Polaris client
// and the CLI: validation, user, auth and HTTP-context errors.
package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents an input validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// UserError represents an error caused by user input or configuration.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and
// suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// AuthError represents authentication failures: missing credentials or a
// rejected token request.
type AuthError struct {
	Reason     string
	Suggestion string
	Err        error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication error: %s", e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// AuthRequiredError wraps an error with an authentication-required message.
func AuthRequiredError(err error) error {
	return &AuthError{
		Reason:     "authentication required",
		Suggestion: "Run 'pol auth login' to store API credentials",
		Err:        err,
	}
}

// NotFoundError creates a user-friendly error for a missing resource.
// entityType names the kind ("table", "project"), identifier the name or
// ID that was looked up.
func NotFoundError(entityType, identifier string) error {
	return NewUserError(
		fmt.Sprintf("%s %q not found", entityType, identifier),
		fmt.Sprintf("Run 'pol %s list' to see the available %ss", entityType, entityType),
	)
}

// Type checkers

func IsAuthError(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// UserSuggestion returns a suggestion string if err carries one.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Suggestion
	}
	return ""
}

// ContextualError wraps an error with HTTP request context for debugging.
type ContextualError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

// WrapContext wraps an error with HTTP request context. StatusCode can be 0
// if the request never completed. Returns nil if err is nil.
func WrapContext(method, url string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &ContextualError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

func (e *ContextualError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s (%d): %s", e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Err)
}

func (e *ContextualError) Unwrap() error {
	return e.Err
}
