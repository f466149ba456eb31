package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	App            AppSection            `toml:"app"`
	Attention      AttentionSection      `toml:"attention"`
	Language       LanguageSection       `toml:"language"`
	ProblemSolving ProblemSolvingSection `toml:"problem-solving"`
}

// AppSection maps process-wide settings.
type AppSection struct {
	Seed    *int64  `toml:"seed"`
	LogFile *string `toml:"log-file"`
}

// AttentionSection maps attention test settings.
type AttentionSection struct {
	RevealMS          *int     `toml:"reveal-ms"`
	CPTLength         *int     `toml:"cpt-length"`
	CPTDisplayMS      *int     `toml:"cpt-display-ms"`
	GridSize          *int     `toml:"grid-size"`
	TargetProbability *float64 `toml:"target-probability"`
	MinTargets        *int     `toml:"min-targets"`
}

// LanguageSection maps language test settings.
type LanguageSection struct {
	FluencyLetter *string `toml:"fluency-letter"`
}

// ProblemSolvingSection maps problem-solving test settings.
type ProblemSolvingSection struct {
	Circles               *int     `toml:"circles"`
	SurfaceWidth          *float64 `toml:"surface-width"`
	SurfaceHeight         *float64 `toml:"surface-height"`
	SurfaceMargin         *float64 `toml:"surface-margin"`
	CircleRadius          *float64 `toml:"circle-radius"`
	CompleteAfterSequence *bool    `toml:"complete-after-sequence"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

const defaultFile = `# mindscan configuration.
# Every key is optional; the values below are the built-in defaults.

[app]
# Fixed seed for randomized stimuli. Omit for a time-based seed.
# seed = 42
# log-file = "/tmp/mindscan.log"

[attention]
reveal-ms = 2000
cpt-length = 30
cpt-display-ms = 1500
grid-size = 6
target-probability = 0.3
# Grids with fewer targets are regenerated. 0 allows an empty grid.
min-targets = 1

[language]
# Overrides the letter of the built-in fluency item.
# fluency-letter = "s"

[problem-solving]
circles = 12
surface-width = 400.0
surface-height = 400.0
surface-margin = 50.0
circle-radius = 25.0
# End the test and notify after the last number sequence.
complete-after-sequence = false
`

// WriteDefault writes a commented default config to path unless a file is
// already there. It reports whether a file was created.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultFile), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
