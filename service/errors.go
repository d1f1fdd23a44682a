package service

import (
	"errors"
	"fmt"
)

var (
	ErrFailedValidation = errors.New("failed validation")
	ErrUpstream         = errors.New("upstream provider failure")
)

// failedValidation wraps one entry of a validation error map so that callers
// can match the sentinel with errors.Is while still seeing the field detail.
func (s *service) failedValidation(errorMap map[string]string) error {
	for k, v := range errorMap {
		return fmt.Errorf("%w: %q %s", ErrFailedValidation, k, v)
	}
	return ErrFailedValidation
}
