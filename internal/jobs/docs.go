// Package jobs contains the scheduled jobs of the dispatch application.
// In server mode a single refresh job periodically re-runs the file-based
// pipeline so the artifacts on disk track the input files.
package jobs
