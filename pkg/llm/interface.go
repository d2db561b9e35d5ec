// Package llm defines the contract of a text generation provider.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// APIError is returned when the provider answered with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       json.RawMessage
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("generation API responded with status %d", e.StatusCode)
}

// ResponseBody returns the raw body of the failed response.
func (e *APIError) ResponseBody() json.RawMessage { return e.Body }

//go:generate mockgen -package mockllm -source=interface.go -destination=mock/mockllm.go *
type Generator interface {
	// Ready returns a configuration error when no API key is configured.
	Ready() error
	// Generate returns the raw text the model produced for prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}
