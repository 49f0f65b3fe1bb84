package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driven"
)

// Ensure ScopeListStore implements the interface.
var _ driven.ScopeListStore = (*ScopeListStore)(nil)

// scopeFileName is the scope list file within the config directory.
const scopeFileName = "scope.toml"

// DefaultScopeLists returns the embedded syllabus scope configuration.
// These cover a GCSE/A-level physics course; which terms belong on
// which list is a content decision, which is exactly why the lists
// live in a user-editable file rather than in the classifier.
func DefaultScopeLists() domain.ScopeLists {
	return domain.ScopeLists{
		OutOfDomain: []string{
			"sql", "leetcode", "python", "javascript", "typescript",
			"coding", "programming", "algorithm", "database", "compiler",
			"kubernetes", "frontend", "backend",
			"photosynthesis", "mitosis", "osmosis", "enzyme", "digestion",
			"titration", "electrolysis of brine", "organic chemistry",
			"shakespeare", "essay", "geography", "economics", "accounting",
			"recipe", "cooking", "football", "cricket", "movie",
			"stock market", "cryptocurrency", "horoscope",
		},
		AboveLevel: []string{
			"schrodinger", "schrödinger", "quantum field", "lagrangian",
			"hamiltonian", "tensor", "general relativity", "dirac",
			"maxwell's equations", "partial differential", "fourier",
			"hilbert", "gauge theory", "perturbation theory",
			"statistical mechanics", "qft", "renormalisation", "noether",
		},
		InScope: []string{
			"force", "energy", "motion", "speed", "velocity", "acceleration",
			"momentum", "friction", "gravity", "weight", "mass", "density",
			"pressure", "moment", "lever", "spring", "hooke", "elastic",
			"work done", "kinetic", "potential", "power", "efficiency",
			"current", "voltage", "resistance", "resistor", "circuit",
			"charge", "capacitance", "capacitor", "electricity", "electron",
			"transformer", "induction", "magnet", "magnetic", "motor",
			"wave", "frequency", "wavelength", "amplitude", "sound", "echo",
			"light", "reflection", "refraction", "lens", "prism", "spectrum",
			"heat", "temperature", "thermal", "conduction", "convection",
			"radiation", "specific heat", "latent heat",
			"atom", "nucleus", "proton", "neutron", "isotope", "radioactive",
			"half-life", "alpha", "beta", "gamma",
			"orbit", "satellite", "planet", "solar system",
			"ohm", "newton", "joule", "watt", "pascal", "hertz",
		},
		FallbackPattern: `\b(physics|forces?|energy|waves?|circuits?|motion|heat|light|sound|magnets?|atoms?)\b`,
	}
}

// ScopeListStore loads the classifier's scope lists from a
// user-editable TOML file, falling back to the embedded defaults.
//
// The store uses lazy initialisation - the file is only written when
// first loaded, not in the constructor, so tests see no surprise I/O.
type ScopeListStore struct {
	mu       sync.RWMutex
	filePath string
	initOnce sync.Once
	initErr  error
}

// scopeFile is the on-disk TOML shape of the scope lists.
type scopeFile struct {
	OutOfDomain     []string `toml:"out_of_domain"`
	AboveLevel      []string `toml:"above_level"`
	InScope         []string `toml:"in_scope"`
	FallbackPattern string   `toml:"fallback_pattern"`
}

// NewScopeListStore creates a scope list store.
// If configDir is empty, defaults to ~/.physika.
func NewScopeListStore(configDir string) (*ScopeListStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".physika")
	}

	return &ScopeListStore{
		filePath: filepath.Join(configDir, scopeFileName),
	}, nil
}

// Load returns the scope lists. On first call the default file is
// materialised if missing, so users have something to edit; a failed
// write degrades to the embedded defaults rather than erroring.
func (s *ScopeListStore) Load() (domain.ScopeLists, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return DefaultScopeLists(), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultScopeLists(), nil
		}
		return domain.ScopeLists{}, fmt.Errorf("read scope lists: %w", err)
	}

	var parsed scopeFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return domain.ScopeLists{}, fmt.Errorf("parse scope lists: %w", err)
	}

	return domain.ScopeLists{
		OutOfDomain:     parsed.OutOfDomain,
		AboveLevel:      parsed.AboveLevel,
		InScope:         parsed.InScope,
		FallbackPattern: parsed.FallbackPattern,
	}, nil
}

// Path returns the scope list file path.
func (s *ScopeListStore) Path() string {
	return s.filePath
}

// initialise writes the default scope file if none exists.
func (s *ScopeListStore) initialise() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.filePath); err == nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		s.initErr = err
		return
	}

	defaults := DefaultScopeLists()
	data, err := toml.Marshal(scopeFile{
		OutOfDomain:     defaults.OutOfDomain,
		AboveLevel:      defaults.AboveLevel,
		InScope:         defaults.InScope,
		FallbackPattern: defaults.FallbackPattern,
	})
	if err != nil {
		s.initErr = err
		return
	}

	s.initErr = os.WriteFile(s.filePath, data, 0600)
}
