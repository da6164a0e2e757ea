// Package services contains the domain services of the dispatch pipeline:
// order normalization, deduplication, assignment planning, and delivery
// reconciliation. The services are pure: they hold no I/O, perform no
// logging, and degrade malformed data to defaults instead of failing, so a
// single bad row never halts a batch.
package services
