package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindscan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write a default config file if missing and print its path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath(cmd)
		created, err := config.WriteDefault(path)
		if err != nil {
			return err
		}
		if !created {
			if _, err := config.Load(path); err != nil {
				return fmt.Errorf("existing config: %w", err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
