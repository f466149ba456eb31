package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadOverridesKeys(t *testing.T) {
	path := writeConfig(t, `
[app]
seed = 7

[attention]
reveal-ms = 500
min-targets = 3

[language]
fluency-letter = "b"

[problem-solving]
circles = 8
complete-after-sequence = true
`)
	s, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(7), *s.Seed)
	assert.Equal(t, 500*time.Millisecond, s.Attention.Reveal)
	assert.Equal(t, 3, s.Attention.MinTargets)
	assert.Equal(t, 30, s.Attention.CPTLength, "unset keys keep defaults")
	assert.Equal(t, "b", s.Language.FluencyLetter)
	assert.Equal(t, 8, s.ProblemSolving.Circles)
	assert.True(t, s.ProblemSolving.CompleteAfterSequence)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "[attention]\nreveal = 10\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "attention.reveal")
}

func TestLoadRejectsBadToml(t *testing.T) {
	path := writeConfig(t, "[attention\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to decode config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   string
	}{
		{"zero reveal", func(s *Settings) { s.Attention.Reveal = 0 }, "reveal-ms"},
		{"probability", func(s *Settings) { s.Attention.TargetProbability = 1.5 }, "target-probability"},
		{"min targets", func(s *Settings) { s.Attention.MinTargets = 40 }, "min-targets"},
		{"impossible targets", func(s *Settings) { s.Attention.TargetProbability = 0 }, "non-zero"},
		{"letter", func(s *Settings) { s.Language.FluencyLetter = "st" }, "fluency-letter"},
		{"circles", func(s *Settings) { s.ProblemSolving.Circles = 0 }, "circles"},
		{"surface", func(s *Settings) { s.ProblemSolving.Width = 80 }, "twice the margin"},
		{"radius", func(s *Settings) { s.ProblemSolving.Radius = 0 }, "circle-radius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			assert.ErrorContains(t, s.Validate(), tt.want)
		})
	}
	assert.NoError(t, Defaults().Validate())
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindscan", "config.toml")

	created, err := WriteDefault(path)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = WriteDefault(path)
	require.NoError(t, err)
	assert.False(t, created)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/cfg", "mindscan", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/state", "mindscan", "mindscan.log"), DefaultLogPath())
}

func TestResolveLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	t.Setenv("MINDSCAN_LOG", "")
	p, err := ResolveLogPath("", "")
	require.NoError(t, err)
	assert.Empty(t, p)

	p, err = ResolveLogPath("", filepath.Join(dir, "cfg", "x.log"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cfg", "x.log"), p)
	assert.DirExists(t, filepath.Join(dir, "cfg"))

	t.Setenv("MINDSCAN_LOG", "1")
	p, err = ResolveLogPath("", "ignored.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mindscan", "mindscan.log"), p)

	p, err = ResolveLogPath(filepath.Join(dir, "flag.log"), "ignored.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flag.log"), p)
}
