package domain

import "time"

// Exchange is an audit record of one question/answer round.
// Refused questions are recorded too, with an empty Answer.
type Exchange struct {
	// ID is the unique identifier for the exchange.
	ID string

	// AskedAt is when the question arrived.
	AskedAt time.Time

	// Question is the user's question verbatim.
	Question string

	// Allowed reports whether the scope gate accepted the question.
	Allowed bool

	// Reason tags the refusal when the question was rejected.
	Reason RefusalReason

	// Refusal is the refusal text shown to the user, if any.
	Refusal string

	// Answer is the generated answer text, if any.
	Answer string

	// Sources lists the source labels of the chunks handed to the
	// generation step, in relevance order.
	Sources []string
}

// Answer is the assistant's response to a question.
type Answer struct {
	// Question is the user's question verbatim.
	Question string

	// Classification is the scope gate's decision.
	Classification ClassificationResult

	// Chunks are the retrieved passages, descending relevance.
	// Empty when the question was refused or nothing matched.
	Chunks []Chunk

	// Text is the final answer text. For refusals this is the refusal
	// message; when retrieval found nothing it is a fallback notice.
	Text string
}

// Sources returns the distinct source labels of the retrieved chunks,
// in first-appearance order.
func (a *Answer) Sources() []string {
	seen := make(map[string]bool, len(a.Chunks))
	var out []string
	for _, c := range a.Chunks {
		if !seen[c.Source] {
			seen[c.Source] = true
			out = append(out, c.Source)
		}
	}
	return out
}
