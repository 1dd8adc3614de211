package gist

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrNotFound     = errors.New("gist not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrRateLimited  = errors.New("rate limited")
)

// APIError is a non-2xx response of the gist API.
type APIError struct {
	StatusCode       int
	Method           string
	Path             string
	Message          string
	DocumentationURL string
	RetryAfter       time.Duration
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// FileNotFoundError is returned when a gist exists but lacks the file.
type FileNotFoundError struct {
	URI URI
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %q not found in gist %s", DecodeDirectoryName(e.URI.Filename), e.URI.GistID)
}

func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
