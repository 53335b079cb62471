package settings

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/bluejacket-trading/bluejacket/pkg/dynamodb"
	"github.com/bluejacket-trading/bluejacket/pkg/tradier"
)

// Prefix is the envconfig prefix of all settings, e.g. BLUEJACKET_LOG_LEVEL
const Prefix = "BLUEJACKET"

// Credential sources
const (
	SourceEnv      = "env"
	SourceDynamoDB = "dynamodb"
)

// Settings holds the process configuration around the Tradier credential.
// Keys are derived from the field names (LogLevel is BLUEJACKET_LOG_LEVEL)
// and are only read with the prefix.
type Settings struct {
	LogLevel         string `split_words:"true" default:"info"`
	CredentialSource string `split_words:"true" default:"env"`

	// DynamoDB configuration
	AWSRegion string `split_words:"true" default:"us-east-1"`
	TableName string `split_words:"true" default:"bluejacket-data"`
	Profile   string `default:"default"`

	// Environment, when set, replaces the endpoint returned by the source
	Environment string

	// Discord notifications
	DiscordWebhookURL string `split_words:"true"`
}

// Load reads settings from BLUEJACKET_* environment variables
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(Prefix, &s); err != nil {
		return nil, fmt.Errorf("failed to process settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the credential source and environment names
func (s *Settings) Validate() error {
	switch s.CredentialSource {
	case SourceEnv, SourceDynamoDB:
	default:
		return fmt.Errorf("unknown credential source %q (want %q or %q)", s.CredentialSource, SourceEnv, SourceDynamoDB)
	}
	if s.Environment != "" {
		if _, err := tradier.ParseEnvironment(s.Environment); err != nil {
			return err
		}
	}
	return nil
}

// Source resolves a Tradier configuration for a profile
type Source interface {
	LoadConfig(ctx context.Context, profile string) (*tradier.Config, error)
}

// EnvSource reads the credential from the process environment. The profile
// is ignored.
type EnvSource struct {
	Loader tradier.Loader
}

func (e *EnvSource) LoadConfig(ctx context.Context, _ string) (*tradier.Config, error) {
	return e.Loader.Load(ctx)
}

// NewSource returns the source selected by CredentialSource
func (s *Settings) NewSource(ctx context.Context) (Source, error) {
	switch s.CredentialSource {
	case SourceDynamoDB:
		svc, err := dynamodb.NewService(ctx, s.AWSRegion, s.TableName)
		if err != nil {
			return nil, fmt.Errorf("failed to create DynamoDB service: %w", err)
		}
		return svc, nil
	default:
		return &EnvSource{}, nil
	}
}

// Resolve loads the configuration from source and applies the Environment
// override. The returned config has been validated.
func (s *Settings) Resolve(ctx context.Context, source Source) (*tradier.Config, error) {
	cfg, err := source.LoadConfig(ctx, s.Profile)
	if err != nil {
		return nil, err
	}

	if s.Environment != "" {
		env, err := tradier.ParseEnvironment(s.Environment)
		if err != nil {
			return nil, err
		}
		endpoint, err := tradier.EndpointFor(env)
		if err != nil {
			return nil, err
		}
		cfg.Endpoint = endpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
