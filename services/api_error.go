package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrKind classifies gateway errors so callers branch on a tag instead of
// probing error shapes.
type ErrKind int

const (
	ErrKindValidation ErrKind = iota
	ErrKindUnauthorized
	ErrKindNotFound
	ErrKindUpstream
	ErrKindUnreachable
)

// APIError carries the upstream status and raw body alongside an extracted
// message, so proxy handlers can forward backend error bodies verbatim.
type APIError struct {
	Kind    ErrKind
	Status  int
	Message string
	Raw     []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrKindNotFound
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrKindUnauthorized
}

// errorFromResponse shapes a non-2xx backend response into an APIError.
// Message extraction prefers body.message, then body.error, then a generic
// per-status text.
func errorFromResponse(status int, body []byte) *APIError {
	kind := ErrKindUpstream
	switch status {
	case http.StatusUnauthorized:
		kind = ErrKindUnauthorized
	case http.StatusNotFound:
		kind = ErrKindNotFound
	case http.StatusBadRequest:
		kind = ErrKindValidation
	}
	return &APIError{
		Kind:    kind,
		Status:  status,
		Message: extractMessage(status, body),
		Raw:     body,
	}
}

func extractMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return genericMessage(status)
}

func genericMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusUnauthorized:
		return "authentication required"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "resource not found"
	default:
		if text := http.StatusText(status); text != "" {
			return text
		}
		return "unexpected backend error"
	}
}
