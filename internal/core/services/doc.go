// Package services implements the core business logic for Physika.
//
// The three services with real algorithmic content are:
//
//   - Classifier: gates questions into allowed / refused before any
//     retrieval happens
//   - Retriever: ranks the in-memory chunk collection against a query
//     using lexical overlap, frequency, and phrase-match signals
//   - Ingestor: builds the chunk collection from the corpus sources
//
// The Assistant service orchestrates them: classify first, retrieve on
// acceptance, then hand the question and passages to the generation
// adapter.
//
// All services are pure or read-only over shared state, so concurrent
// invocations need no coordination once ingestion has completed.
package services
