package driven

import "github.com/aldergate-labs/physika-cli/internal/core/domain"

// ScopeListStore loads the classifier's scope lists.
// Syllabus scope is a content decision, so the lists live in
// user-editable configuration with embedded defaults.
type ScopeListStore interface {
	// Load returns the scope lists, falling back to embedded
	// defaults when no user configuration exists.
	Load() (domain.ScopeLists, error)
}
