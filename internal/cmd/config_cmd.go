package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/imdbkit/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Show or write the configuration",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration, flags included",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printJSON(cmd, a.cfg)
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the effective configuration to ~/.imdbkit/config.json",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.cfg.Save(); err != nil {
					return err
				}
				path, err := config.ConfigPath()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			},
		},
	)
	return c
}
