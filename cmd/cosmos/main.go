// Command cosmos is a thin presentation layer over the content access and AI
// augmentation core: it browses the catalog, searches it, and drives the
// narration, tone, and chat features from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cosmos/internal/catalog"
	"cosmos/internal/config"
	"cosmos/internal/gemini"
	"cosmos/internal/logging"
	"cosmos/internal/prefs"
)

var (
	cfgPath string
	apiKey  string
	debug   bool

	sys *app
)

// app holds the wired core: one repository, one search index, one AI client,
// one preference store. Constructed once per invocation and passed by hand;
// no globals inside the components themselves.
type app struct {
	cfg   config.Config
	log   *zap.Logger
	repo  *catalog.Repository
	index *catalog.Index
	ai    *gemini.Client
	prefs *prefs.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.GeminiAPIKey = apiKey
	}
	if debug {
		cfg.Debug = true
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return nil, err
	}

	repo := catalog.NewRepository(catalog.WithLatency(cfg.CatalogLatency.Std()))
	return &app{
		cfg:   cfg,
		log:   log,
		repo:  repo,
		index: catalog.NewIndex(repo),
		ai: gemini.New(gemini.Config{
			APIKey:    cfg.GeminiAPIKey,
			ChatModel: cfg.ChatModel,
			TTSModel:  cfg.TTSModel,
			Voice:     cfg.Voice,
		}),
		prefs: store,
	}, nil
}

func (a *app) close() {
	if a == nil {
		return
	}
	if a.prefs != nil {
		a.prefs.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

var rootCmd = &cobra.Command{
	Use:          "cosmos",
	Short:        "Cosmic Library — a knowledge base with an AI guide",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		sys, err = newApp()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		sys.close()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "cosmos.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides config and GEMINI_API_KEY)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(categoriesCmd, articlesCmd, searchCmd, readCmd, chatCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
