package domain

// RefusalReason identifies why a question was rejected by the scope gate.
type RefusalReason string

// Available refusal reasons. Exactly one applies to a rejected question.
const (
	// RefusalNone means the question was allowed.
	RefusalNone RefusalReason = ""

	// RefusalOutOfDomain means the question named a non-syllabus subject.
	RefusalOutOfDomain RefusalReason = "out_of_domain"

	// RefusalAboveLevel means the question asked for a treatment beyond
	// the syllabus level of the same broad discipline.
	RefusalAboveLevel RefusalReason = "above_level"

	// RefusalUnrecognised means the question matched no known topic.
	RefusalUnrecognised RefusalReason = "unrecognised"
)

// IsValid returns true if the refusal reason is recognised.
func (r RefusalReason) IsValid() bool {
	switch r {
	case RefusalNone, RefusalOutOfDomain, RefusalAboveLevel, RefusalUnrecognised:
		return true
	default:
		return false
	}
}

// ClassificationResult is the outcome of scope-gating a question.
// Refusal is non-empty if and only if Allowed is false.
type ClassificationResult struct {
	// Allowed reports whether the question may proceed to retrieval.
	Allowed bool

	// Reason tags the refusal; RefusalNone when allowed.
	Reason RefusalReason

	// Refusal is the human-readable explanation shown to the user.
	// Empty when the question is allowed.
	Refusal string
}

// Accepted builds an accepting classification result.
func Accepted() ClassificationResult {
	return ClassificationResult{Allowed: true, Reason: RefusalNone}
}

// Rejected builds a refusing classification result for the given reason.
func Rejected(reason RefusalReason, refusal string) ClassificationResult {
	return ClassificationResult{Allowed: false, Reason: reason, Refusal: refusal}
}
