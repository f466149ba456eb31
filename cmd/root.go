package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindscan/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mindscan",
	Short: "Terminal cognitive assessment",
	Long: `mindscan runs three short cognitive tests in the terminal: attention,
language and problem solving. Scores are kept in memory for the current run.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/mindscan/config.toml)")
	pf.String("log-file", "", "Write logs to this file (overrides MINDSCAN_LOG env var)")
	pf.Int64("seed", 0, "Seed for randomized stimuli, for reproducible runs")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stimuliCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigPath returns the --config flag or the default XDG path.
func resolveConfigPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

// loadSettings reads the config file and applies flags on top of it.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load(resolveConfigPath(cmd))
	if err != nil {
		return config.Settings{}, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		s.Seed = &seed
	}
	return s, nil
}
