// internal/kmer/table.go
package kmer

// Table maps each distinct k-mer to its occurrence count.
// Iteration follows first-occurrence order, so two tables built from the
// same input always serialize identically.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add increments kmer by n. Non-positive n is ignored.
func (t *Table) Add(kmer string, n int) {
	if n <= 0 {
		return
	}
	if _, seen := t.counts[kmer]; !seen {
		t.order = append(t.order, kmer)
	}
	t.counts[kmer] += n
	t.total += n
}

// Get returns the count for kmer (0 if absent).
func (t *Table) Get(kmer string) int { return t.counts[kmer] }

// Len is the number of distinct k-mers.
func (t *Table) Len() int { return len(t.order) }

// Total is the sum of all counts.
func (t *Table) Total() int { return t.total }

// Each calls fn for every entry in first-occurrence order and stops at the
// first error.
func (t *Table) Each(fn func(kmer string, n int) error) error {
	for _, k := range t.order {
		if err := fn(k, t.counts[k]); err != nil {
			return err
		}
	}
	return nil
}

// Merge adds every entry of other into t. Keys new to t are appended in
// other's order.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for _, k := range other.order {
		t.Add(k, other.counts[k])
	}
}
