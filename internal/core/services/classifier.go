package services

import (
	"strings"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driving"
	"github.com/aldergate-labs/physika-cli/internal/logger"
)

// Ensure Classifier implements the interface.
var _ driving.ClassifierService = (*Classifier)(nil)

// Refusal messages for the three rejection reasons.
const (
	refusalOutOfDomain = "That topic isn't part of the physics syllabus these notes cover. " +
		"Try asking about a topic from your course."
	refusalAboveLevel = "That looks like a treatment beyond the level these notes cover. " +
		"Try asking for the syllabus-level version of the topic."
	refusalUnrecognised = "That doesn't look like an in-scope physics question. " +
		"Try rephrasing it using terms from your syllabus."
)

// Classifier gates questions into allowed / refused before retrieval.
//
// Matching is plain substring containment over three ordered lists plus
// a regular-expression fallback. That means a keyword buried inside an
// unrelated longer word still matches; a known, accepted imprecision of
// the heuristic, kept deliberately rather than tightened to word
// boundaries, which would change observable accept/reject outcomes.
type Classifier struct {
	scope *domain.CompiledScope
}

// NewClassifier creates a classifier over compiled scope lists.
func NewClassifier(scope *domain.CompiledScope) *Classifier {
	return &Classifier{scope: scope}
}

// Classify evaluates the question in strict priority order: the
// out-of-domain list first, then the above-level list, then the
// in-scope list with the topical fallback pattern. First match wins;
// a question matching nothing is refused with the generic message.
//
// Total over all string inputs: it always returns a result and never
// errors. Pure; no state across calls.
func (c *Classifier) Classify(query string) domain.ClassificationResult {
	q := strings.ToLower(query)

	if term, ok := containsAny(q, c.scope.OutOfDomain); ok {
		logger.Debug("Classifier: out-of-domain term %q in %q", term, query)
		return domain.Rejected(domain.RefusalOutOfDomain, refusalOutOfDomain)
	}

	if term, ok := containsAny(q, c.scope.AboveLevel); ok {
		logger.Debug("Classifier: above-level term %q in %q", term, query)
		return domain.Rejected(domain.RefusalAboveLevel, refusalAboveLevel)
	}

	if term, ok := containsAny(q, c.scope.InScope); ok {
		logger.Debug("Classifier: in-scope term %q in %q", term, query)
		return domain.Accepted()
	}
	if c.scope.Fallback != nil && c.scope.Fallback.MatchString(q) {
		logger.Debug("Classifier: fallback pattern matched %q", query)
		return domain.Accepted()
	}

	logger.Debug("Classifier: no list matched %q", query)
	return domain.Rejected(domain.RefusalUnrecognised, refusalUnrecognised)
}

// containsAny reports the first term of the list contained in q.
func containsAny(q string, terms []string) (string, bool) {
	for _, term := range terms {
		if strings.Contains(q, term) {
			return term, true
		}
	}
	return "", false
}
