package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driven"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driving"
	"github.com/aldergate-labs/physika-cli/internal/logger"
)

// Ensure Retriever implements the interface.
var _ driving.RetrievalService = (*Retriever)(nil)

// DefaultTopK is the default number of chunks returned per retrieval.
const DefaultTopK = 6

// Token weight tiers. Longer tokens are rarer and more specific, so
// occurrences of them count for more than short common terms.
const (
	weightLong   = 2.2 // tokens of 10+ characters
	weightMedium = 1.6 // tokens of 7-9 characters
	weightShort  = 1.0
)

// phraseBonus is added when the full normalised query (of at least
// phraseMinLen characters) appears verbatim in a chunk.
const (
	phraseBonus  = 8.0
	phraseMinLen = 12
)

// stopwords are excluded from token scoring: common English function
// words plus the generic instructional verbs questions start with.
var stopwords = map[string]struct{}{
	"is": {}, "in": {}, "of": {}, "to": {}, "it": {}, "an": {},
	"at": {}, "on": {}, "or": {}, "as": {}, "be": {}, "by": {},
	"do": {}, "we": {}, "if": {}, "so": {}, "up": {}, "my": {},
	"the": {}, "and": {}, "for": {}, "are": {}, "was": {}, "were": {},
	"but": {}, "not": {}, "you": {}, "your": {}, "with": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "from": {}, "into": {}, "about": {},
	"what": {}, "which": {}, "when": {}, "where": {}, "does": {}, "did": {},
	"can": {}, "could": {}, "would": {}, "should": {}, "will": {}, "shall": {},
	"how": {}, "why": {}, "who": {}, "its": {}, "has": {}, "have": {},
	"had": {}, "than": {}, "then": {}, "there": {}, "here": {}, "they": {},
	"them": {}, "their": {}, "out": {}, "any": {}, "all": {}, "some": {},
	"explain": {}, "define": {}, "describe": {}, "state": {}, "give": {},
	"write": {}, "list": {}, "calculate": {}, "find": {}, "solve": {},
	"show": {}, "tell": {}, "please": {}, "question": {}, "answer": {},
	"using": {}, "between": {}, "difference": {},
}

// Retriever ranks the in-memory chunk collection against a query
// using lexical overlap only. No index structures are built: at this
// corpus scale a linear scan per query is cheap and keeps the whole
// component pure and read-only.
type Retriever struct {
	store driven.ChunkStore
}

// NewRetriever creates a retriever over the given chunk store.
func NewRetriever(store driven.ChunkStore) *Retriever {
	return &Retriever{store: store}
}

// Retrieve ranks every stored chunk against the query and returns at
// most topK chunks in descending relevance. A non-positive topK
// retrieves nothing; callers wanting a default supply their own.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]domain.Chunk, error) {
	if topK <= 0 {
		return nil, nil
	}

	chunks, err := r.store.Chunks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chunks: %w", err)
	}

	scored := Rank(query, chunks, topK)
	logger.Debug("Retriever: %d of %d chunks matched %q", len(scored), len(chunks), query)

	result := make([]domain.Chunk, len(scored))
	for i, sc := range scored {
		result[i] = sc.Chunk
	}
	return result, nil
}

// Rank scores chunks against the query and returns at most topK
// scored chunks, descending score, ties keeping original order.
//
// Purely read-only over the chunk slice; deterministic for fixed
// inputs; never fails. A query that normalises to nothing but
// stopwords retrieves nothing, and topK <= 0 returns nothing.
func Rank(query string, chunks []domain.Chunk, topK int) []domain.ScoredChunk {
	if topK <= 0 {
		return nil
	}

	normQuery := normaliseText(query)
	tokens := tokenise(normQuery)
	if len(tokens) == 0 {
		return nil
	}

	usePhrase := len(normQuery) >= phraseMinLen

	scored := make([]domain.ScoredChunk, 0, len(chunks))
	for _, chunk := range chunks {
		text := normaliseText(chunk.Text)

		var score float64
		for _, tok := range tokens {
			// Literal substring counting; user input never reaches
			// a pattern compiler.
			if n := strings.Count(text, tok); n > 0 {
				score += float64(n) * tokenWeight(tok)
			}
		}

		if usePhrase && strings.Contains(text, normQuery) {
			score += phraseBonus
		}

		if score > 0 {
			scored = append(scored, domain.ScoredChunk{Chunk: chunk, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

// tokenWeight returns the length-tier weight for a query token.
func tokenWeight(token string) float64 {
	switch {
	case len(token) >= 10:
		return weightLong
	case len(token) >= 7:
		return weightMedium
	default:
		return weightShort
	}
}

// tokenise splits a normalised query into scoring tokens, dropping
// single characters and stopwords.
func tokenise(normalised string) []string {
	fields := strings.Fields(normalised)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// normaliseText lower-cases the text and strips everything except
// letters, digits, whitespace, and the small set of symbols physics
// notation uses (. + - / % and the degree sign), then collapses
// whitespace.
func normaliseText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '.' || r == '+' || r == '-' || r == '/' || r == '%' || r == '°':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
