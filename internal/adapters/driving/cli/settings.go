package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/config/file"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change configuration",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets one configuration key and saves the file.

Keys:
  notes-dir      directory the assistant indexes
  chunk-size     characters per chunk
  chunk-overlap  overlapping characters between chunks
  top-k          passages handed to generation
  model          chat model name
  base-url       OpenAI-compatible endpoint override`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the LLM API key",
	Long: `Prompts for the API key without echoing it and saves it to the
config file. The PHYSIKA_API_KEY environment variable takes
precedence over the stored key.`,
	Args: cobra.NoArgs,
	RunE: runSettingsSetKey,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsSetKeyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func loadSettingsStore() (*file.SettingsStore, error) {
	if settingsStore != nil {
		return settingsStore, nil
	}
	store, err := file.NewSettingsStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	settingsStore = store
	return store, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	store, err := loadSettingsStore()
	if err != nil {
		return err
	}
	s := store.Settings()

	cmd.Printf("Config file:    %s\n", store.Path())
	cmd.Printf("notes-dir:      %s\n", s.NotesDir)
	cmd.Printf("chunk-size:     %d\n", s.ChunkSize)
	cmd.Printf("chunk-overlap:  %d\n", s.ChunkOverlap)
	cmd.Printf("top-k:          %d\n", s.TopK)
	cmd.Printf("model:          %s\n", s.LLM.Model)
	if s.LLM.BaseURL != "" {
		cmd.Printf("base-url:       %s\n", s.LLM.BaseURL)
	}
	cmd.Printf("api-key:        %s\n", maskAPIKey(s.LLM.APIKey))
	if s.GitHub.Owner != "" {
		cmd.Printf("github:         %s/%s\n", s.GitHub.Owner, s.GitHub.Repo)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	store, err := loadSettingsStore()
	if err != nil {
		return err
	}
	key, value := args[0], args[1]

	var keyErr error
	err = store.Update(func(s *file.Settings) {
		switch key {
		case "notes-dir":
			s.NotesDir = value
		case "chunk-size":
			fmt.Sscanf(value, "%d", &s.ChunkSize)
		case "chunk-overlap":
			fmt.Sscanf(value, "%d", &s.ChunkOverlap)
		case "top-k":
			fmt.Sscanf(value, "%d", &s.TopK)
		case "model":
			s.LLM.Model = value
		case "base-url":
			s.LLM.BaseURL = value
		default:
			keyErr = fmt.Errorf("unknown key %q", key)
		}
	})
	if keyErr != nil {
		return keyErr
	}
	if err != nil {
		return err
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runSettingsSetKey(cmd *cobra.Command, _ []string) error {
	store, err := loadSettingsStore()
	if err != nil {
		return err
	}

	cmd.Print("API key: ")
	key := readPassword()
	cmd.Println()

	if key == "" {
		return fmt.Errorf("no key entered")
	}

	if err := store.Update(func(s *file.Settings) {
		s.LLM.APIKey = key
	}); err != nil {
		return fmt.Errorf("save key: %w", err)
	}

	cmd.Printf("Saved %s to %s\n", maskAPIKey(key), store.Path())
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
