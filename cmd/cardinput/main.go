package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jask/cardinput/internal/config"
	"github.com/jask/cardinput/internal/database"
	"github.com/jask/cardinput/internal/database/repository"
	"github.com/jask/cardinput/internal/tui"
)

var (
	// Global flags
	configPath string
	layoutFlag string
	dbFlag     string
	verbose    bool

	// cfg is loaded once per invocation, before any command runs.
	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "cardinput",
	Short: "Terminal credit card entry form",
	Long: `cardinput collects a card number, expiry and security code in a compact
one-row form that collapses the number once it is complete, or in a labeled
two-row form.

Only the brand, last four digits and expiry of saved cards are stored.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.Log)
		if err != nil {
			return errors.Wrap(err, "init logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runForm,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.config/cardinput/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "sqlite database path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&layoutFlag, "layout", "", `form layout: "fade" or "form"`)

	rootCmd.AddCommand(cardsCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if layoutFlag != "" {
		cfg.UI.Layout = layoutFlag
	}
	if dbFlag != "" {
		cfg.Database.Path = dbFlag
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger writes JSON logs to the configured file. The terminal belongs to
// the form, so nothing goes to stdout or stderr.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	if lc.Path == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", lc.Level)
	}
	if err := os.MkdirAll(filepath.Dir(lc.Path), 0o755); err != nil {
		return nil, errors.Wrap(err, "mkdir log dir")
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{lc.Path}
	zc.ErrorOutputPaths = []string{lc.Path}
	return zc.Build()
}

func openStore(c config.Config) (*repository.CardRepo, func(), error) {
	db, err := database.OpenAndMigrate(c.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewCardRepo(db), func() { db.Close() }, nil
}

func runForm(cmd *cobra.Command, args []string) error {
	for _, w := range cfg.Warnings() {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting form", zap.String("layout", cfg.UI.Layout), zap.String("db", cfg.Database.Path))
	app := tui.New(ctx, cfg, store, tui.WithLogger(logger))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "run form")
	}
	return nil
}

// commandContext returns cmd's context, or a background one when cmd was
// invoked directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
