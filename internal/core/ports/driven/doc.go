// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): document parsing and writing, rule and
// snippet configuration, the suggestion generator boundary, and the
// review-history store.
//
// Implementations live under internal/adapters/driven.
package driven
