package tradier

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned when no access token could be found.
	ErrMissingCredential = errors.New("missing Tradier API access token")

	// ErrInvalidConfig is returned by Validate for an incomplete configuration.
	ErrInvalidConfig = errors.New("invalid Tradier API configuration")

	// ErrUnknownEnvironment is returned for environment names other than sandbox and production.
	ErrUnknownEnvironment = errors.New("unknown Tradier environment")
)

// MissingCredentialError names the variable or key the token was expected under.
// It never carries the token itself.
type MissingCredentialError struct {
	Variable string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: %s is not set", ErrMissingCredential, e.Variable)
}

// Is implements errors.Is for sentinel error matching.
func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}
