package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/corpus/filesystem"
)

var ingestWatch bool

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Index the notes corpus and report what was found",
	Long: `Walks the configured corpus sources, chunks every document, and
prints the resulting counts. The index itself is in-memory and
rebuilt on every run; this command exists to check what the
assistant will see.

With --watch the command keeps running and re-indexes whenever the
notes directory changes.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVarP(&ingestWatch, "watch", "w", false, "re-index on notes directory changes")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if ingestService == nil {
		if err := initServices(ctx); err != nil {
			return err
		}
	}
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	stats, err := ingestService.Ingest(ctx)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Sources:   %d\n", stats.Sources)
	cmd.Printf("Documents: %d\n", stats.Documents)
	cmd.Printf("Chunks:    %d\n", stats.Chunks)

	if stats.Documents == 0 {
		cmd.Println()
		cmd.Println("No documents found. Check notes_dir in your config.")
	}

	if !ingestWatch {
		return nil
	}

	if settingsStore == nil {
		return errors.New("watch requires file configuration")
	}
	notesDir := settingsStore.Settings().NotesDir

	watcher, err := filesystem.NewWatcher(notesDir, func(ctx context.Context) {
		if _, err := ingestService.Ingest(ctx); err != nil {
			cmd.PrintErrf("re-ingest failed: %v\n", err)
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", notesDir, err)
	}
	defer watcher.Close()

	cmd.Printf("Watching %s for changes (ctrl-c to stop)\n", notesDir)
	err = watcher.Run(ctx)
	if errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}
