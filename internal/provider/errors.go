package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ProviderError classifies a failed delivery call. Rejected means the
// provider's API explicitly declined the request; anything else is a
// transport-level fault.
type ProviderError struct {
	StatusCode int
	Message    string
	Rejected   bool
	Cause      error
}

func (e *ProviderError) Error() string {
	if e == nil {
		return "<nil>"
	}

	parts := make([]string, 0, 4)
	parts = append(parts, "provider error")

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		parts = append(parts, msg)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsRejected reports whether the provider explicitly rejected the request.
func IsRejected(err error) bool {
	if err == nil {
		return false
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Rejected
	}

	return false
}
