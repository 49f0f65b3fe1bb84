package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/corpus/filesystem"
	"github.com/aldergate-labs/physika-cli/internal/adapters/driving/tui"
	"github.com/aldergate-labs/physika-cli/internal/logger"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat session over your notes",
	Long: `Starts a terminal chat session. Each question goes through the
same pipeline as "ask": scope gate, retrieval, generation.

While the session runs, the notes directory is watched and
re-indexed on changes.

Controls:
  Enter    - Ask
  ↑/↓      - Scroll the transcript
  Esc      - Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if assistantService == nil {
		if err := ensureIngested(ctx); err != nil {
			return err
		}
	}
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	// Keep the index fresh while the session runs.
	if settingsStore != nil {
		notesDir := settingsStore.Settings().NotesDir
		watcher, err := filesystem.NewWatcher(notesDir, func(ctx context.Context) {
			if _, err := ingestService.Ingest(ctx); err != nil {
				logger.Warn("Re-ingest failed: %v", err)
			}
		})
		if err != nil {
			logger.Warn("Notes watch unavailable: %v", err)
		} else {
			defer watcher.Close()
			go watcher.Run(ctx) //nolint:errcheck // stops with the session
		}
	}

	model := tui.NewChat(assistantService)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat session: %w", err)
	}
	return nil
}
