package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "CARDINPUT"

// Layouts are the layout names the form understands.
var Layouts = []string{"fade", "form"}

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings for the card form.
type UIConfig struct {
	Layout           string       `mapstructure:"layout"`
	Animate          bool         `mapstructure:"animate"`
	AutoFocus        bool         `mapstructure:"auto_focus"`
	RequiresCVC      bool         `mapstructure:"requires_cvc"`
	ValidColor       string       `mapstructure:"valid_color"`
	InvalidColor     string       `mapstructure:"invalid_color"`
	PlaceholderColor string       `mapstructure:"placeholder_color"`
	Placeholders     Placeholders `mapstructure:"placeholders"`
}

// Placeholders overrides the per-field placeholder text. Empty keeps the
// form's default.
type Placeholders struct {
	Number string `mapstructure:"number"`
	Expiry string `mapstructure:"expiry"`
	CVC    string `mapstructure:"cvc"`
}

// LogConfig controls the file logger. The terminal belongs to the UI, so logs
// never go to stdout.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "cardinput")
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "cardinput", "config.toml")
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Database: DatabaseConfig{Path: filepath.Join(dataDir(), "cards.db")},
		UI: UIConfig{
			Layout:           "fade",
			Animate:          true,
			AutoFocus:        true,
			RequiresCVC:      true,
			InvalidColor:     "red",
			PlaceholderColor: "gray",
		},
		Log: LogConfig{Path: filepath.Join(dataDir(), "cardinput.log"), Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("ui.layout", d.UI.Layout)
	v.SetDefault("ui.animate", d.UI.Animate)
	v.SetDefault("ui.auto_focus", d.UI.AutoFocus)
	v.SetDefault("ui.requires_cvc", d.UI.RequiresCVC)
	v.SetDefault("ui.valid_color", d.UI.ValidColor)
	v.SetDefault("ui.invalid_color", d.UI.InvalidColor)
	v.SetDefault("ui.placeholder_color", d.UI.PlaceholderColor)
	v.SetDefault("ui.placeholders.number", "")
	v.SetDefault("ui.placeholders.expiry", "")
	v.SetDefault("ui.placeholders.cvc", "")
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads configuration from path (or DefaultPath when empty) and the
// environment. Env var overrides use prefix CARDINPUT_. A missing file is not
// an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return c, nil
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || os.IsNotExist(errors.Cause(err))
}

// Save writes cfg to path (or DefaultPath when empty), creating the config
// directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir config dir")
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.layout", cfg.UI.Layout)
	v.Set("ui.animate", cfg.UI.Animate)
	v.Set("ui.auto_focus", cfg.UI.AutoFocus)
	v.Set("ui.requires_cvc", cfg.UI.RequiresCVC)
	v.Set("ui.valid_color", cfg.UI.ValidColor)
	v.Set("ui.invalid_color", cfg.UI.InvalidColor)
	v.Set("ui.placeholder_color", cfg.UI.PlaceholderColor)
	v.Set("ui.placeholders.number", cfg.UI.Placeholders.Number)
	v.Set("ui.placeholders.expiry", cfg.UI.Placeholders.Expiry)
	v.Set("ui.placeholders.cvc", cfg.UI.Placeholders.CVC)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}

// Warnings lists settings that load fine but will not do what the user
// probably meant. An unknown layout falls back to "fade".
func (c Config) Warnings() []string {
	var out []string
	// layout names match exactly; case and spacing only feed the suggestion
	if c.UI.Layout != "" && !contains(Layouts, c.UI.Layout) {
		msg := fmt.Sprintf("unknown ui.layout %q, using %q", c.UI.Layout, Layouts[0])
		if s := suggest(strings.ToLower(strings.TrimSpace(c.UI.Layout)), Layouts); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		out = append(out, msg)
	}
	return out
}

// suggest returns the candidate closest to s, if it is close enough to be a
// likely typo.
func suggest(s string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(s, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > 2 {
		return ""
	}
	return best
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
