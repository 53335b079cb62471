package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bluejacket-trading/bluejacket/pkg/dynamodb"
	"github.com/bluejacket-trading/bluejacket/pkg/logging"
	"github.com/bluejacket-trading/bluejacket/pkg/settings"
	"github.com/bluejacket-trading/bluejacket/pkg/tradier"
)

// credentialTable is the DynamoDB credential store used by the credential commands
type credentialTable interface {
	settings.Source
	SaveConfig(ctx context.Context, profile string, cfg *tradier.Config) error
}

// cli carries settings and overridable constructors shared by all commands
type cli struct {
	settings *settings.Settings
	envFiles []string

	newSource func(ctx context.Context, s *settings.Settings, envFiles []string) (settings.Source, error)
	newTable  func(ctx context.Context, s *settings.Settings) (credentialTable, error)
}

func newCLI() *cli {
	return &cli{
		newSource: func(ctx context.Context, s *settings.Settings, envFiles []string) (settings.Source, error) {
			if s.CredentialSource == settings.SourceEnv {
				return &settings.EnvSource{Loader: tradier.Loader{EnvFiles: envFiles}}, nil
			}
			return s.NewSource(ctx)
		},
		newTable: func(ctx context.Context, s *settings.Settings) (credentialTable, error) {
			return dynamodb.NewService(ctx, s.AWSRegion, s.TableName)
		},
	}
}

func newRootCmd(c *cli) *cobra.Command {
	var logLevel, source, profile, environment string

	rootCmd := &cobra.Command{
		Use:   "bluejacket",
		Short: "Bluejacket manages the Tradier API configuration of the trading bot",
		Long: `Bluejacket resolves which Tradier API endpoint (sandbox or production) and
which access token the trading bot uses. The token is read from
TRADIER_API_ACCESS_TOKEN (optionally via a .env file) or from a DynamoDB
credential table, and is never printed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loader := tradier.Loader{EnvFiles: c.envFiles}
			loader.MergeEnvFiles()

			s, err := settings.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				s.LogLevel = logLevel
			}
			if flags.Changed("source") {
				s.CredentialSource = source
			}
			if flags.Changed("profile") {
				s.Profile = profile
			}
			if flags.Changed("environment") {
				s.Environment = environment
			}

			if err := s.Validate(); err != nil {
				return err
			}

			logging.Setup(s.LogLevel, false)
			c.settings = s
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&source, "source", settings.SourceEnv, "Credential source (env or dynamodb)")
	pf.StringVar(&profile, "profile", "default", "Credential profile in the DynamoDB table")
	pf.StringVar(&environment, "environment", "", "Override the endpoint with the sandbox or production URL")
	pf.StringSliceVar(&c.envFiles, "env-file", nil, "Env files merged into the environment before reading settings and the token (default .env)")

	rootCmd.AddCommand(newConfigCmd(c), newCredentialCmd(c))
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := newRootCmd(newCLI()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
