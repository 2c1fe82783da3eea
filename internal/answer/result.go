// Package answer validates and decodes AI replies before they reach the
// profile document. Replies cross an untrusted boundary: the model may wrap
// JSON in code fences, return prose instead of the requested structure, or
// signal a domain problem with the fixed error prefix.
package answer

import (
	"errors"
	"regexp"
	"strings"
)

// ErrorPrefix marks a stored report string as an error rather than content.
// It is the persistence convention; inside the process errors stay typed.
const ErrorPrefix = "Fehler:"

var (
	ErrEmptyResponse = errors.New("answer: empty response")
	ErrInvalidJSON   = errors.New("answer: response is not valid JSON")
)

// AppError is a domain problem reported by the model itself, carried through
// as content for display.
type AppError struct {
	Message string
}

func (e *AppError) Error() string { return e.Message }

// IsAppError reports whether a raw reply uses the error convention.
func IsAppError(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), ErrorPrefix)
}

var codeFenceRe = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n(.*?)\\n?```$")

// StripCodeFence removes a single wrapping Markdown fence if present.
// Content without a fence passes through unchanged.
func StripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if m := codeFenceRe.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}

// MarkdownReport validates a free-text report reply. It returns the cleaned
// content, an AppError when the model used the error convention, or
// ErrEmptyResponse for a blank reply.
func MarkdownReport(raw string) (string, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return "", ErrEmptyResponse
	}
	if IsAppError(cleaned) {
		return "", &AppError{Message: cleaned}
	}
	return cleaned, nil
}
