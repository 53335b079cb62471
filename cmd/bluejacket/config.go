package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bluejacket-trading/bluejacket/pkg/tradier"
)

func newConfigCmd(c *cli) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved Tradier API configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved endpoint and a redacted access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd)
			if err != nil {
				return err
			}
			defer cfg.Destroy()

			fmt.Fprintln(cmd.OutOrStdout(), cfg)
			return nil
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that a complete configuration can be resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd)
			if err != nil {
				return err
			}
			defer cfg.Destroy()

			if cfg.Endpoint != tradier.SandboxEndpoint {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s is not the sandbox endpoint\n", cfg.Endpoint)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", cfg.Endpoint)
			return nil
		},
	}

	configCmd.AddCommand(showCmd, checkCmd)
	return configCmd
}

func (c *cli) resolve(cmd *cobra.Command) (*tradier.Config, error) {
	source, err := c.newSource(cmd.Context(), c.settings, c.envFiles)
	if err != nil {
		return nil, err
	}
	return c.settings.Resolve(cmd.Context(), source)
}
