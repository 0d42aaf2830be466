package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/rpggio/storyboard/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, catalog.ErrVariantNotFound):
		return &APIError{Code: "VARIANT_NOT_FOUND", Message: "variant not found", RecoveryHint: "Call list_variants for valid ids"}
	case errors.Is(err, storyboard.ErrCaseNotFound):
		return &APIError{Code: "CASE_NOT_FOUND", Message: "case not found", RecoveryHint: "Call list_cases for ids in this session"}
	case errors.Is(err, repository.ErrDuplicateCase):
		return &APIError{Code: "DUPLICATE_CASE", Message: "case id already used", RecoveryHint: "Retry; ids are assigned from the current count"}
	default:
		return nil
	}
}

// toolError returns the API error for err, or err itself when it has no mapping.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
