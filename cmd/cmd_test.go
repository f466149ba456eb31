package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func resetFlags() {
	for _, name := range []string{"config", "seed"} {
		f := rootCmd.PersistentFlags().Lookup(name)
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	f := stimuliCmd.Flags().Lookup("json")
	_ = f.Value.Set(f.DefValue)
	f.Changed = false
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Equal(t, "mindscan (devel)\n", out)
}

func TestStimuliCommand(t *testing.T) {
	out := execute(t, "stimuli")
	assert.Contains(t, out, "5-8-2")
	assert.Contains(t, out, "The sky is ___ → blue, cloudy, dark, clear")
	assert.Contains(t, out, "2, 4, 6, 8 → 10")
}

func TestStimuliCommandJSON(t *testing.T) {
	out := execute(t, "stimuli", "--json")
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"fluency_letter": "s"`)
}

func TestConfigCommandWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindscan", "config.toml")
	out := execute(t, "config", "--config", path)
	assert.Equal(t, path+"\n", out)
	assert.FileExists(t, path)

	// Second run validates the existing file.
	out = execute(t, "config", "--config", path)
	assert.Equal(t, path+"\n", out)
}

func TestLoadSettingsSeedFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.toml")
	t.Cleanup(resetFlags)
	require.NoError(t, rootCmd.ParseFlags([]string{"--config", path, "--seed", "42"}))

	s, err := loadSettings(rootCmd)
	require.NoError(t, err)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(42), *s.Seed)
}

func TestLoadSettingsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[attention]\nbogus = 1\n"), 0o644))
	t.Cleanup(resetFlags)
	require.NoError(t, rootCmd.ParseFlags([]string{"--config", path}))

	_, err := loadSettings(rootCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
