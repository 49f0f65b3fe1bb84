package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the persisted Physika configuration.
type Settings struct {
	// NotesDir is the directory the filesystem corpus source walks.
	NotesDir string `toml:"notes_dir"`

	// ChunkSize is the characters per chunk.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the overlapping characters between chunks.
	ChunkOverlap int `toml:"chunk_overlap"`

	// TopK is the number of passages handed to generation.
	TopK int `toml:"top_k"`

	// LLM configures the generation service.
	LLM LLMSettings `toml:"llm"`

	// GitHub configures the optional repository corpus source.
	GitHub GitHubSettings `toml:"github"`
}

// LLMSettings configures the generation adapter.
type LLMSettings struct {
	// APIKey authenticates against the OpenAI-compatible API.
	APIKey string `toml:"api_key"`

	// BaseURL overrides the API endpoint (Azure, local proxies).
	BaseURL string `toml:"base_url"`

	// Model is the chat model name.
	Model string `toml:"model"`
}

// GitHubSettings configures the repository corpus source.
type GitHubSettings struct {
	// Owner/Repo identify the notes repository.
	Owner string `toml:"owner"`
	Repo  string `toml:"repo"`

	// Path is the directory within the repository to ingest.
	Path string `toml:"path"`

	// Ref is the branch or tag; empty means the default branch.
	Ref string `toml:"ref"`

	// Token is a personal access token for private repositories.
	Token string `toml:"token"`
}

// DefaultSettings returns the settings a fresh install starts from.
func DefaultSettings() Settings {
	return Settings{
		NotesDir:     "notes",
		ChunkSize:    1000,
		ChunkOverlap: 200,
		TopK:         6,
		LLM: LLMSettings{
			Model: "gpt-4o-mini",
		},
	}
}

// SettingsStore loads and saves Settings as TOML.
type SettingsStore struct {
	mu       sync.RWMutex
	filePath string
	settings Settings
}

// NewSettingsStore creates a TOML-backed settings store.
// If configDir is empty, defaults to ~/.physika.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".physika")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	s := &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
		settings: DefaultSettings(),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Settings returns a copy of the current settings.
func (s *SettingsStore) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update applies fn to the settings and persists the result.
func (s *SettingsStore) Update(fn func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.settings)
	return s.save()
}

// Load reads the settings file, keeping defaults for missing keys.
func (s *SettingsStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - defaults apply
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	s.settings = settings
	return nil
}

// Save persists the current settings to disk.
func (s *SettingsStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes the TOML file (caller must hold lock).
func (s *SettingsStore) save() error {
	data, err := toml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// The file can carry an API key; keep it private.
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
