package dna

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDNA(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"A", true},
		{"ACGT", true},
		{"TTTTGGGGCCCCAAAA", true},
		{"ACGN", false},
		{"acgt", false},
		{"ACgT", false},
		{"AC1T", false},
		{"ACGU", false},
		{"ACG T", false},
		{"RYKM", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsDNA(c.in), "IsDNA(%q)", c.in)
	}
}

func TestFirstInvalid(t *testing.T) {
	pos, b, bad := FirstInvalid("ACGTNACGT")
	assert.True(t, bad)
	assert.Equal(t, 4, pos)
	assert.Equal(t, byte('N'), b)

	pos, _, bad = FirstInvalid("ACGT")
	assert.False(t, bad)
	assert.Equal(t, -1, pos)
}

func TestAlphabet_Snapshot(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		if !canonical[Alphabet[i]] {
			t.Fatalf("alphabet letter %q missing from lookup table", Alphabet[i])
		}
	}
	n := 0
	for _, ok := range canonical {
		if ok {
			n++
		}
	}
	assert.Equal(t, len(Alphabet), n, "lookup table must contain exactly the canonical bases")
}
