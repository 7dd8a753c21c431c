package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "mdslides dev")
	require.Contains(t, out, "commit: none")
}

func TestConfigCommandAppliesFlags(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	out, err := execute(t, "config", "--config", missing, "--theme", "dark", "--swipe-threshold", "8", "--no-mouse", "--debug")
	require.NoError(t, err)
	require.Contains(t, out, "theme: dark")
	require.Contains(t, out, "swipe_threshold: 8")
	require.Contains(t, out, "mouse: false")
	require.Contains(t, out, "debug: true")
	require.Contains(t, out, "alt_screen: true")
}

func TestConfigCommandRejectsInvalidTheme(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	_, err := execute(t, "config", "--config", missing, "--theme", "neon")
	require.Error(t, err)
	require.Contains(t, err.Error(), "theme")
}

func TestRootRequiresDeck(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
}

func TestRootMissingDeck(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--config", filepath.Join(dir, "none.yaml"), filepath.Join(dir, "absent.md"))
	require.Error(t, err)
}
