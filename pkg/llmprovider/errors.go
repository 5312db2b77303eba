package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential indicates the backend has no API key configured.
	// Returned before any network call is attempted.
	ErrMissingCredential = errors.New("missing credential")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrUnknownModel indicates the requested model maps to no configured provider
	ErrUnknownModel = errors.New("unknown model")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
