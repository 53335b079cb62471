package tradier

import (
	"fmt"
	"strings"
)

const (
	// SandboxEndpoint is the Tradier developer sandbox. It is the default so
	// that a token is never pointed at a live account without an explicit override.
	SandboxEndpoint = "https://sandbox.tradier.com/v1/"

	// ProductionEndpoint is the live brokerage API.
	ProductionEndpoint = "https://api.tradier.com/v1/"
)

// Environment names a Tradier API environment
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

// DefaultEndpoint returns the base URL used when none is configured
func DefaultEndpoint() string {
	return SandboxEndpoint
}

// ParseEnvironment parses an environment name, ignoring case and surrounding space
func ParseEnvironment(name string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(name))); env {
	case EnvironmentSandbox, EnvironmentProduction:
		return env, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
}

// EndpointFor returns the base URL for the given environment
func EndpointFor(env Environment) (string, error) {
	switch env {
	case EnvironmentSandbox:
		return SandboxEndpoint, nil
	case EnvironmentProduction:
		return ProductionEndpoint, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, string(env))
	}
}
