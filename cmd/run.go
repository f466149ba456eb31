package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindscan/internal/app"
	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/config"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/stimuli"
)

var runCmd = &cobra.Command{
	Use:       "run <attention|language|problem-solving>",
	Short:     "Open one test directly",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"attention", "language", "problem-solving"},
	RunE: func(cmd *cobra.Command, args []string) error {
		test, err := assessment.ParseTestKind(args[0])
		if err != nil {
			return err
		}
		return runApp(cmd, test)
	},
}

// runApp loads settings and stimuli, builds dependencies, and launches the
// TUI. test may be empty to start on the home route.
func runApp(cmd *cobra.Command, test assessment.TestKind) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	set, err := stimuli.Default()
	if err != nil {
		return fmt.Errorf("load stimuli: %w", err)
	}

	flagLog, _ := cmd.Flags().GetString("log-file")
	logPath, err := config.ResolveLogPath(flagLog, settings.LogFile)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}

	board := assessment.NewMemoryLog()
	return app.Run(app.Options{
		Deps: testkit.Deps{
			Stimuli:  set,
			Settings: settings,
			Board:    board,
			Sink:     assessment.WithLogging(board),
			Pictures: stimuli.EmbeddedPictures{},
		},
		Test:    test,
		LogFile: logPath,
	})
}
