// Package kmer holds the frequency table and the sliding-window counter.
// It knows nothing about files, validation or output formats; callers
// validate sequences before counting.
package kmer
