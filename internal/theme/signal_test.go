package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsePreference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		dark bool
		ok   bool
	}{
		{in: "dark", dark: true, ok: true},
		{in: " Dark\n", dark: true, ok: true},
		{in: "1", dark: true, ok: true},
		{in: "light", dark: false, ok: true},
		{in: "off", dark: false, ok: true},
		{in: "sepia", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		dark, ok := ParsePreference(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
		require.Equal(t, tt.dark, dark, tt.in)
	}
}

func TestFromMode(t *testing.T) {
	t.Parallel()

	sig, err := FromMode(ModeDark, "")
	require.NoError(t, err)
	require.True(t, sig.Dark())

	sig, err = FromMode(ModeLight, "")
	require.NoError(t, err)
	require.False(t, sig.Dark())

	sig, err = FromMode(ModeAuto, "")
	require.NoError(t, err)
	require.IsType(t, Terminal{}, sig)

	sig, err = FromMode(ModeLight, "/tmp/pref")
	require.NoError(t, err)
	require.IsType(t, &FileSignal{}, sig)

	_, err = FromMode(Mode("neon"), "")
	require.Error(t, err)
}

func TestFixedNeverNotifies(t *testing.T) {
	t.Parallel()

	called := false
	stop, err := Fixed(true).Subscribe(func(bool) { called = true })
	require.NoError(t, err)
	stop()
	require.False(t, called)
}

func TestFileSignalFallsBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme")

	sig := NewFileSignal(path, Fixed(true))
	require.True(t, sig.Dark(), "missing file uses fallback")

	require.NoError(t, os.WriteFile(path, []byte("light\n"), 0o600))
	require.False(t, sig.Dark())

	require.NoError(t, os.WriteFile(path, []byte("???"), 0o600))
	require.True(t, sig.Dark(), "unparseable file uses fallback")
}

func TestFileSignalNotifiesOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme")
	require.NoError(t, os.WriteFile(path, []byte("light"), 0o600))

	sig := NewFileSignal(path, Fixed(false))
	got := make(chan bool, 4)
	stop, err := sig.Subscribe(func(dark bool) { got <- dark })
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("dark"), 0o600))
	select {
	case dark := <-got:
		require.True(t, dark)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	require.NoError(t, os.Remove(path))
	select {
	case dark := <-got:
		require.False(t, dark)
	case <-time.After(5 * time.Second):
		t.Fatal("no notification after removal")
	}
}

func TestFileSignalSubscribeMissingDir(t *testing.T) {
	t.Parallel()

	sig := NewFileSignal(filepath.Join(t.TempDir(), "nope", "theme"), nil)
	_, err := sig.Subscribe(func(bool) {})
	require.Error(t, err)
}
