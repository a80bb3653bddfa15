package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/deckhand/internal/config"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetErr(out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	t.Run("path", func(t *testing.T) {
		out, err := runCommand(t, "config", "path")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "deckhand", "config.toml")+"\n", out)
	})

	t.Run("set", func(t *testing.T) {
		out, err := runCommand(t, "config", "set", "hand_size", "7")
		require.NoError(t, err)
		assert.Equal(t, "hand_size set to: 7\n", out)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.HandSize)
	})

	t.Run("show", func(t *testing.T) {
		out, err := runCommand(t, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "hand_size = 7")
		assert.Contains(t, out, `default_deck = "standard"`)
	})

	t.Run("set rejects unknown keys", func(t *testing.T) {
		_, err := runCommand(t, "config", "set", "jokers", "2")
		assert.ErrorContains(t, err, `unknown config key "jokers"`)
	})
}
