// Package domain defines the core business entities for Physika.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A normalised note document from the corpus
//   - Chunk: A retrievable window of a document
//   - ClassificationResult: The outcome of scope gating a question
//   - ScopeLists: The swappable syllabus scope configuration
//   - Exchange: An audit record of one question/answer round
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
