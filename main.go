package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sat8bit/cheatsheet/catalog"
	"github.com/sat8bit/cheatsheet/config"
	"github.com/sat8bit/cheatsheet/fetcher"
	"github.com/sat8bit/cheatsheet/renderer"
	"github.com/sat8bit/cheatsheet/topic"
)

// app は、コマンド間で共有する設定とカタログです。
type app struct {
	configPath  string
	catalogPath string
	verbose     bool

	cfg     *config.Config
	catalog *catalog.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cheatsheet",
		Short: "C++ STL vs Java Collections cheat sheet for DSA",
		Long: `cheatsheet shows C++ STL containers next to their Java Collections
counterparts: a code snippet for each language and the key differences.

Run without a subcommand to print the cheat sheet to the terminal.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runPrint,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config yaml (optional)")
	rootCmd.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog file (.yaml/.yml/.json) to use instead of the built-in content")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	addPrintFlags(rootCmd)

	rootCmd.AddCommand(
		a.newPrintCmd(),
		a.newServeCmd(),
		a.newRenderCmd(),
		a.newBrowseCmd(),
		a.newExportCmd(),
	)
	return rootCmd
}

// setup は、ロガー・設定・カタログを初期化します。
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if a.configPath != "" {
		var err error
		cfg, err = config.Load(a.configPath)
		if err != nil {
			return err
		}
	}
	cfg.ApplyEnv()
	if a.catalogPath != "" {
		cfg.Catalog = a.catalogPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var f topic.Fetcher = fetcher.NewEmbeddedFetcher()
	if cfg.Catalog != "" {
		f = fetcher.NewFileFetcher(cfg.Catalog)
	}
	cat, err := catalog.New(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	slog.Debug("Catalog loaded", "topics", cat.Len(), "source", cfg.Catalog)

	a.cfg = cfg
	a.catalog = cat
	return nil
}

func (a *app) page() renderer.Page {
	return renderer.Page{
		Title:     a.cfg.Title,
		HTMLTitle: a.cfg.HTMLTitle,
		Author:    a.cfg.Author.Name,
		AuthorURL: a.cfg.Author.URL,
		BaseURL:   a.cfg.BaseURL,
		Date:      time.Now(),
	}
}

func main() {
	// Ctrl+C シグナルで cancel()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
