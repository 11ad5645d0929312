package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/pageshell/app"
	"github.com/jask/pageshell/core/nav"
	"github.com/jask/pageshell/core/theme"
	"github.com/jask/pageshell/internal/config"
	"github.com/jask/pageshell/internal/database"
	"github.com/jask/pageshell/internal/history"
	"github.com/jask/pageshell/internal/logging"
)

type options struct {
	configPath string
	location   string
	theme      string
	verbose    bool
	resume     bool

	// loaded is cfg before flag overrides; config init persists it.
	loaded config.Config
	cfg    config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "pageshell",
		Short:         "Terminal application shell with declarative routes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.loaded = cfg
			if opts.location != "" {
				cfg.UI.InitialLocation = opts.location
			}
			if opts.theme != "" {
				cfg.UI.Theme = opts.theme
			}
			if opts.verbose {
				cfg.Log.Debug = true
			}
			opts.cfg = cfg
			logger, err := logging.New(cfg.Log.Path, cfg.Log.Debug)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/pageshell/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	root.Flags().StringVar(&opts.location, "location", "", "initial location, e.g. /about")
	root.Flags().StringVar(&opts.theme, "theme", "", "theme name ("+strings.Join(theme.Names(), ", ")+")")
	root.Flags().BoolVar(&opts.resume, "resume", false, "start at the last recorded location (sqlite history only)")

	root.AddCommand(newRoutesCmd(), newHistoryCmd(opts), newConfigCmd(opts))
	return root
}

func runShell(ctx context.Context, opts *options) error {
	cfg := opts.cfg
	logger := opts.logger

	store, closeStore := openStore(ctx, cfg, opts.resume, logger)
	defer closeStore()

	shell := &app.Shell{
		Title:    cfg.UI.Title,
		Theme:    cfg.UI.Theme,
		Store:    store,
		Initial:  cfg.UI.InitialLocation,
		NotFound: nav.ParseNotFoundPolicy(cfg.UI.NotFound),
		Logger:   logger,
		Keys:     cfg.UI.Keys,
	}
	return app.Run(ctx, shell, tea.WithAltScreen())
}

// openStore picks the location store for cfg. A sqlite store that cannot be
// opened degrades to in-memory history.
func openStore(ctx context.Context, cfg config.Config, resume bool, logger *zap.Logger) (nav.LocationStore, func()) {
	memory := func() (nav.LocationStore, func()) {
		return nav.NewMemoryHistory(cfg.UI.InitialLocation), func() {}
	}
	if cfg.History.Driver != "sqlite" {
		return memory()
	}
	db, err := database.OpenMigrated(cfg.History.Path)
	if err != nil {
		logger.Warn("history database unavailable; using memory history", zap.String("path", cfg.History.Path), zap.Error(err))
		return memory()
	}
	store, err := history.Open(ctx, db, history.Options{
		Initial: cfg.UI.InitialLocation,
		Resume:  resume,
		Logger:  logger.Named("history"),
	})
	if err != nil {
		_ = db.Close()
		logger.Warn("history store unavailable; using memory history", zap.Error(err))
		return memory()
	}
	logger.Info("history store opened", zap.String("path", cfg.History.Path), zap.String("session", store.Session()))
	return store, func() { _ = db.Close() }
}
