package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ScopeLists holds the syllabus scope configuration for the classifier.
// Which terms belong on which list is a content decision, not an
// algorithmic one, so the lists are loaded from swappable configuration
// rather than compiled in.
type ScopeLists struct {
	// OutOfDomain contains terms naming non-syllabus subjects
	// (programming, other sciences, lifestyle topics).
	OutOfDomain []string

	// AboveLevel contains markers of university-level treatment of
	// the same broad discipline.
	AboveLevel []string

	// InScope contains syllabus keywords that accept a question.
	InScope []string

	// FallbackPattern is a broad topical regular expression that
	// accepts a question when no InScope keyword matched.
	FallbackPattern string
}

// CompiledScope is a ScopeLists with terms lower-cased and the
// fallback pattern compiled. Built once, read-only afterwards.
type CompiledScope struct {
	OutOfDomain []string
	AboveLevel  []string
	InScope     []string
	Fallback    *regexp.Regexp
}

// Compile validates the lists and compiles the fallback pattern.
// All terms are lower-cased so matching is case-insensitive against
// a lower-cased query.
func (l ScopeLists) Compile() (*CompiledScope, error) {
	if len(l.InScope) == 0 && l.FallbackPattern == "" {
		return nil, fmt.Errorf("%w: scope lists accept nothing", ErrInvalidInput)
	}

	var fallback *regexp.Regexp
	if l.FallbackPattern != "" {
		re, err := regexp.Compile(l.FallbackPattern)
		if err != nil {
			return nil, fmt.Errorf("compile fallback pattern: %w", err)
		}
		fallback = re
	}

	return &CompiledScope{
		OutOfDomain: lowerAll(l.OutOfDomain),
		AboveLevel:  lowerAll(l.AboveLevel),
		InScope:     lowerAll(l.InScope),
		Fallback:    fallback,
	}, nil
}

func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
