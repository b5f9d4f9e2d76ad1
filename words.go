package fuzzyvault

import (
	"github.com/kepler-labs/fuzzyvault/field"
	"github.com/kepler-labs/fuzzyvault/vaulterr"
)

// validateWords checks a candidate word list against the common input
// rules: exact length n, pairwise distinct, each entry in [0, corpusSize).
func validateWords(words []uint64, n, corpusSize int) error {
	if len(words) != n {
		return vaulterr.New(vaulterr.BadLength, "word list has %d entries, want %d", len(words), n)
	}
	seen := make(map[uint64]bool, n)
	for _, w := range words {
		if seen[w] {
			return vaulterr.New(vaulterr.NotUnique, "word list contains a duplicate entry")
		}
		seen[w] = true
		if w >= uint64(corpusSize) {
			return vaulterr.New(vaulterr.OutOfRange, "word list contains an entry outside [0, %d)", corpusSize)
		}
	}
	return nil
}

// toElements reduces a validated word list into field elements.
func toElements(f *field.Field, words []uint64) []field.Element {
	out := make([]field.Element, len(words))
	for i, w := range words {
		out[i] = f.Elem(w)
	}
	return out
}
