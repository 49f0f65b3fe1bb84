// Package cli implements the physika command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	envcfg "github.com/aldergate-labs/physika-cli/internal/adapters/driven/config/env"
	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/config/file"
	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/corpus/filesystem"
	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/corpus/github"
	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/llm/openai"
	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/storage/memory"
	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/storage/sqlite"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driven"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driving"
	"github.com/aldergate-labs/physika-cli/internal/core/services"
	"github.com/aldergate-labs/physika-cli/internal/logger"
	"github.com/aldergate-labs/physika-cli/internal/postprocessors"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// Services the commands run against. initServices wires the real
// adapters; tests assign mocks directly.
var (
	settingsStore     *file.SettingsStore
	assistantService  driving.AssistantService
	classifierService driving.ClassifierService
	retrievalService  driving.RetrievalService
	ingestService     driving.IngestService
	historyService    driving.HistoryService
	historyStore      driven.HistoryStore
)

var rootCmd = &cobra.Command{
	Use:   "physika",
	Short: "Ask questions against your physics notes",
	Long: `Physika is a study assistant for GCSE and A-level physics.

It indexes your notes directory, keeps questions on topic with a
configurable scope gate, and answers from the retrieved passages.
Questions outside school physics are refused rather than answered.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.physika)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the production adapters into the core services.
// Idempotent: commands that need several services call it once each
// without re-wiring.
func initServices(ctx context.Context) error {
	if assistantService != nil {
		return nil
	}

	var err error
	settingsStore, err = file.NewSettingsStore(configDir)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	overrides, err := envcfg.Parse()
	if err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	settings := settingsStore.Settings()
	overrides.Apply(&settings)

	// Scope gate
	scopeStore, err := file.NewScopeListStore(configDir)
	if err != nil {
		return fmt.Errorf("open scope lists: %w", err)
	}
	lists, err := scopeStore.Load()
	if err != nil {
		return fmt.Errorf("load scope lists: %w", err)
	}
	scope, err := lists.Compile()
	if err != nil {
		return fmt.Errorf("compile scope lists: %w", err)
	}
	classifierService = services.NewClassifier(scope)

	// Corpus sources
	var sources []driven.CorpusSource
	fsSource, err := filesystem.NewSource(settings.NotesDir)
	if err != nil {
		logger.Warn("Notes directory unavailable: %v", err)
	} else {
		sources = append(sources, fsSource)
	}
	if settings.GitHub.Owner != "" && settings.GitHub.Repo != "" {
		ghSource, err := github.NewSource(ctx, github.Config{
			Owner: settings.GitHub.Owner,
			Repo:  settings.GitHub.Repo,
			Path:  settings.GitHub.Path,
			Ref:   settings.GitHub.Ref,
			Token: settings.GitHub.Token,
		})
		if err != nil {
			logger.Warn("GitHub source unavailable: %v", err)
		} else {
			sources = append(sources, ghSource)
		}
	}

	// Ingestion pipeline
	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	window, err := registry.Build("chunker", map[string]any{
		"chunk_size": settings.ChunkSize,
		"overlap":    settings.ChunkOverlap,
	})
	if err != nil {
		return fmt.Errorf("configure chunker: %w", err)
	}
	pipeline := postprocessors.NewPipeline(window)

	store := memory.NewChunkStore()
	ingestService = services.NewIngestor(sources, pipeline, store)
	retrievalService = services.NewRetriever(store)

	// Generation is optional: without a key the assistant answers
	// with the retrieved passages directly.
	var llm driven.LLMService
	if settings.LLM.APIKey != "" {
		llm, err = openai.NewLLMService(openai.LLMConfig{
			APIKey:  settings.LLM.APIKey,
			BaseURL: settings.LLM.BaseURL,
			Model:   settings.LLM.Model,
		})
		if err != nil {
			return fmt.Errorf("configure llm: %w", err)
		}
	} else {
		logger.Info("No API key configured; answering with raw passages")
	}

	history, err := sqlite.NewHistoryStore("")
	if err != nil {
		logger.Warn("History unavailable: %v", err)
	} else {
		historyStore = history
	}

	assistant := services.NewAssistant(classifierService, retrievalService, llm, historyStore, settings.TopK)
	assistantService = assistant
	historyService = assistant

	return nil
}

// ensureIngested populates the in-memory index. The index lives only
// for the process lifetime, so any command that reads it ingests first.
func ensureIngested(ctx context.Context) error {
	if err := initServices(ctx); err != nil {
		return err
	}
	if _, err := ingestService.Ingest(ctx); err != nil {
		return fmt.Errorf("ingest notes: %w", err)
	}
	return nil
}
