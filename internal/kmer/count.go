// internal/kmer/count.go
package kmer

// DefaultK is the window length used when none is configured.
const DefaultK = 5

// Count tallies every overlapping window of length k in seq (stride 1).
// len(seq) < k, or k <= 0, yields an empty table.
func Count(seq string, k int) *Table {
	t := NewTable()
	if k <= 0 || len(seq) < k {
		return t
	}
	n := len(seq) - k + 1
	t.counts = make(map[string]int, min(n, 1<<16))
	for i := 0; i < n; i++ {
		t.Add(seq[i:i+k], 1)
	}
	return t
}
