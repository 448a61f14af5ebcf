package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Transport and decoding errors
	ErrTransport         = errors.New("transport failure")
	ErrMalformedResponse = errors.New("malformed source response")

	// Data quality errors
	ErrNoNumericData = errors.New("no numeric records survived cleaning")

	// Input validation errors
	ErrUnknownPrefix   = errors.New("unknown indicator prefix")
	ErrUnmappedCountry = errors.New("country name not in mapping")

	// Completeness errors
	ErrIncompleteData = errors.New("required indicator missing")
)

// Error constructors with context
func NewTransportError(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrTransport, source, err)
}

func NewStatusError(source string, status int) error {
	return fmt.Errorf("%w: %s returned status %d", ErrTransport, source, status)
}

func NewDecodeError(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, source, err)
}

func NewUnknownPrefixError(code string) error {
	return fmt.Errorf("%w: %q (expected WB_, IMF_ or DC_)", ErrUnknownPrefix, code)
}

func NewIncompleteDataError(column string) error {
	return fmt.Errorf("%w: %s", ErrIncompleteData, column)
}

// Error checking helpers
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrUnknownPrefix) ||
		errors.Is(err, ErrUnmappedCountry)
}

func IsCompletenessError(err error) bool {
	return errors.Is(err, ErrIncompleteData)
}
