// internal/dna/validate.go
package dna

// Canonical DNA bases. Lowercase and IUPAC ambiguity codes are not accepted.
const Alphabet = "ACGT"

var canonical = [256]bool{'A': true, 'C': true, 'G': true, 'T': true}

// IsDNA reports whether every byte of s is one of A, C, G, T.
// The empty string is valid.
func IsDNA(s string) bool {
	_, _, bad := FirstInvalid(s)
	return !bad
}

// FirstInvalid returns the 0-based position and value of the first byte of s
// outside the canonical alphabet. found is false when s is entirely valid.
func FirstInvalid(s string) (pos int, b byte, found bool) {
	for i := 0; i < len(s); i++ {
		if !canonical[s[i]] {
			return i, s[i], true
		}
	}
	return -1, 0, false
}
