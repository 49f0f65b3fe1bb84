// Package driven defines the driven (outbound) ports of the hexagon.
//
// Driven ports are interfaces the core services call out through:
// corpus sources, the chunk store, the generation service, and the
// configuration stores. Adapters under internal/adapters/driven
// implement them.
package driven
