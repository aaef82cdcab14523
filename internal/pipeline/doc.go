// Package pipeline runs the per-file batch: read records, validate, count,
// and write one table per output unit.
//
// Files are processed one at a time. Invalid content skips a file (or a
// record) with a diagnostic; I/O failures abort the run.
package pipeline
