package tradier

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// AccessTokenVariable is the environment variable holding the access token
const AccessTokenVariable = "TRADIER_API_ACCESS_TOKEN"

// Loader builds a Config from the process environment.
// The zero value reads TRADIER_API_ACCESS_TOKEN after merging ./.env.
type Loader struct {
	// EnvFiles are merged into the environment before the lookup. Variables
	// already set are not overwritten. Defaults to ".env"; missing or
	// malformed files are ignored.
	EnvFiles []string

	// LookupEnv overrides os.LookupEnv
	LookupEnv func(key string) (string, bool)

	// Variable overrides AccessTokenVariable
	Variable string

	Logger log.FieldLogger
}

// LoadFromEnv loads the configuration using a zero-value Loader. The
// endpoint is always DefaultEndpoint.
func LoadFromEnv(ctx context.Context) (*Config, error) {
	var l Loader
	return l.Load(ctx)
}

// Load merges the env files, reads the access token and pairs it with
// DefaultEndpoint. A missing or empty token yields a *MissingCredentialError.
func (l *Loader) Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.MergeEnvFiles()

	variable := l.variable()
	token, ok := l.lookupEnv(variable)
	if !ok || token == "" {
		return nil, &MissingCredentialError{Variable: variable}
	}

	cfg := New(DefaultEndpoint(), token)
	l.logger().WithFields(log.Fields{
		"endpoint": cfg.Endpoint,
		"variable": variable,
	}).Debug("Loaded Tradier API configuration from environment")

	return cfg, nil
}

// MergeEnvFiles loads EnvFiles into the process environment without
// overwriting variables that are already set.
func (l *Loader) MergeEnvFiles() {
	files := l.EnvFiles
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			l.logger().WithFields(log.Fields{"file": file, "err": err}).Debug("Skipping env file")
		}
	}
}

func (l *Loader) lookupEnv(key string) (string, bool) {
	if l.LookupEnv != nil {
		return l.LookupEnv(key)
	}
	return os.LookupEnv(key)
}

func (l *Loader) variable() string {
	if l.Variable != "" {
		return l.Variable
	}
	return AccessTokenVariable
}

func (l *Loader) logger() log.FieldLogger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.StandardLogger()
}
