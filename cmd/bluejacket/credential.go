package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bluejacket-trading/bluejacket/pkg/tradier"
)

func newCredentialCmd(c *cli) *cobra.Command {
	credentialCmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage Tradier credentials in the DynamoDB table",
	}

	var endpoint string
	putCmd := &cobra.Command{
		Use:   "put",
		Short: "Store the access token from the environment under a profile",
		Long: `Store the access token read from TRADIER_API_ACCESS_TOKEN (or an env file)
in the DynamoDB credential table. The token is never accepted as a flag so
that it does not end up in shell history.

Example:
  TRADIER_API_ACCESS_TOKEN=... bluejacket credential put --profile live --environment production`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if endpoint != "" && c.settings.Environment != "" {
				return fmt.Errorf("--endpoint %q conflicts with environment %q", endpoint, c.settings.Environment)
			}

			loader := tradier.Loader{EnvFiles: c.envFiles}
			cfg, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			defer cfg.Destroy()

			if endpoint != "" {
				cfg.Endpoint = endpoint
			}
			if c.settings.Environment != "" {
				env, err := tradier.ParseEnvironment(c.settings.Environment)
				if err != nil {
					return err
				}
				if cfg.Endpoint, err = tradier.EndpointFor(env); err != nil {
					return err
				}
			}

			table, err := c.newTable(cmd.Context(), c.settings)
			if err != nil {
				return err
			}
			if err := table.SaveConfig(cmd.Context(), c.settings.Profile, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "stored profile %q: %s\n", c.settings.Profile, cfg)
			return nil
		},
	}
	putCmd.Flags().StringVar(&endpoint, "endpoint", "", "Endpoint to store with the token (default sandbox, not combined with --environment)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored endpoint and a redacted access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := c.newTable(cmd.Context(), c.settings)
			if err != nil {
				return err
			}
			cfg, err := table.LoadConfig(cmd.Context(), c.settings.Profile)
			if err != nil {
				return err
			}
			defer cfg.Destroy()

			fmt.Fprintf(cmd.OutOrStdout(), "profile %q: %s\n", c.settings.Profile, cfg)
			return nil
		},
	}

	credentialCmd.AddCommand(putCmd, showCmd)
	return credentialCmd
}
