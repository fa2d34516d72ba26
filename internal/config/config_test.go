package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	def := Default()
	require.Equal(t, def, cfg)
	require.Equal(t, "fade", cfg.UI.Layout)
	require.True(t, cfg.UI.RequiresCVC)
	require.Empty(t, cfg.Warnings())
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[database]
path = "/tmp/cards.db"

[ui]
layout = "form"
requires_cvc = false
invalid_color = "#ff0000"

[ui.placeholders]
expiry = "MO/YR"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("CARDINPUT_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/cards.db", cfg.Database.Path)
	require.Equal(t, "form", cfg.UI.Layout)
	require.False(t, cfg.UI.RequiresCVC)
	require.True(t, cfg.UI.Animate, "unset keys keep defaults")
	require.Equal(t, "#ff0000", cfg.UI.InvalidColor)
	require.Equal(t, "MO/YR", cfg.UI.Placeholders.Expiry)
	require.Equal(t, "", cfg.UI.Placeholders.Number)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nlayout = "), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.UI.Layout = "form"
	cfg.UI.AutoFocus = false
	cfg.UI.Placeholders.CVC = "CVV"
	cfg.Log.Level = "warn"

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestDefaultPathHonoursEnv(t *testing.T) {
	t.Setenv("CARDINPUT_CONFIG", "/etc/cardinput.toml")
	require.Equal(t, "/etc/cardinput.toml", DefaultPath())
}

func TestWarnings(t *testing.T) {
	cases := []struct {
		layout string
		want   []string
	}{
		{"fade", nil},
		{"form", nil},
		{"Form", []string{`unknown ui.layout "Form", using "fade" (did you mean "form"?)`}},
		{" form ", []string{`unknown ui.layout " form ", using "fade" (did you mean "form"?)`}},
		{"", nil},
		{"from", []string{`unknown ui.layout "from", using "fade" (did you mean "form"?)`}},
		{"compact", []string{`unknown ui.layout "compact", using "fade"`}},
	}
	for _, tc := range cases {
		cfg := Default()
		cfg.UI.Layout = tc.layout
		require.Equal(t, tc.want, cfg.Warnings(), "layout %q", tc.layout)
	}
}
