package domain

import (
	"errors"
	"fmt"
)

// ErrProviderNotConfigured is returned by import when the provider API
// key is missing. This is a configuration error: the provider call is
// never attempted.
var ErrProviderNotConfigured = errors.New("news provider API key is not configured")

// NotFoundError indicates the target article or ticker item does not
// exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// InvalidStateError indicates a moderation transition was attempted
// from a state that does not allow it.
type InvalidStateError struct {
	Op       string
	Current  Status
	Required Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s requires status %q, article is %q", e.Op, e.Required, e.Current)
}

// PolicyError indicates the operation is blocked by the configured
// API-article edit policy.
type PolicyError struct {
	Op string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s of provider-sourced articles is disabled", e.Op)
}
