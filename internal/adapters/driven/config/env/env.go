// Package env provides environment variable overrides for settings.
// Secrets in particular are usually supplied through the environment
// (or a .env file) rather than the config file.
package env

import (
	"github.com/caarlos0/env/v10"

	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/config/file"
)

// Overrides are the environment variables Physika recognises.
// Unset variables leave the corresponding setting untouched.
type Overrides struct {
	APIKey      string `env:"PHYSIKA_API_KEY"`
	BaseURL     string `env:"PHYSIKA_BASE_URL"`
	Model       string `env:"PHYSIKA_MODEL"`
	NotesDir    string `env:"PHYSIKA_NOTES_DIR"`
	GitHubToken string `env:"PHYSIKA_GITHUB_TOKEN"`
}

// Parse reads the overrides from the environment.
func Parse() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, err
	}
	return o, nil
}

// Apply lays the overrides on top of the given settings.
func (o Overrides) Apply(s *file.Settings) {
	if o.APIKey != "" {
		s.LLM.APIKey = o.APIKey
	}
	if o.BaseURL != "" {
		s.LLM.BaseURL = o.BaseURL
	}
	if o.Model != "" {
		s.LLM.Model = o.Model
	}
	if o.NotesDir != "" {
		s.NotesDir = o.NotesDir
	}
	if o.GitHubToken != "" {
		s.GitHub.Token = o.GitHubToken
	}
}
