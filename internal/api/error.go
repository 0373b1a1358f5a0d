package api

import "fmt"

// Error is a non-2xx response from the backend. Message holds the
// entire response body, which the backend uses for human-readable
// failure details; it may be empty.
type Error struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s failed: %d", e.Method, e.Path, e.StatusCode)
}
