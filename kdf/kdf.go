// Package kdf derives deterministic secret keys and an authenticator
// hash from a sorted set of field elements: an extractor product feeds
// a memory-hard scrypt seed, which is then expanded with HMAC-SHA-512.
package kdf

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kepler-labs/fuzzyvault/field"
	"golang.org/x/crypto/scrypt"
)

// Scrypt cost parameters, fixed so that vaults remain portable across
// callers and across time: the library leaves (N, r, p) unpinned, so an
// implementation has to choose and document one set. These match
// scrypt's own recommended interactive-login parameters.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
	seedLen = 32
	HashLen = 32
	KeyLen  = sha512.Size
)

// Extractor computes e = prod(s_i * w_i) mod p over a sorted word set
// and its matching extractor sequence. words and s must share length
// and be index-aligned to the same (sorted) ordering as when the
// extractor was generated.
func Extractor(f *field.Field, words, s []field.Element) field.Element {
	e := field.Element(1 % f.P)
	for i := range words {
		e = f.Mul(e, f.Mul(s[i], words[i]))
	}
	return e
}

// Seed derives the memory-hard seed EK = Scrypt(salt, "key:" || decimal(e)).
func Seed(salt []byte, e field.Element) ([]byte, error) {
	msg := "key:" + strconv.FormatUint(uint64(e), 10)
	return scrypt.Key([]byte(msg), salt, scryptN, scryptR, scryptP, seedLen)
}

// Hash derives the authenticator H = Scrypt(salt, "original_words:" ||
// decimal_list(sort(words))). words is sorted on a private copy; the
// caller's slice is never mutated.
func Hash(salt []byte, words []field.Element) ([]byte, error) {
	sorted := sortedCopy(words)
	msg := "original_words:" + decimalList(sorted)
	return scrypt.Key([]byte(msg), salt, scryptN, scryptR, scryptP, HashLen)
}

// ExpandKeys derives K independent 64-byte keys from a seed via
// HMAC-SHA-512, keyed on the decimal index and applied to the seed as
// the message.
func ExpandKeys(seed []byte, k int) [][]byte {
	keys := make([][]byte, k)
	for i := 0; i < k; i++ {
		mac := hmac.New(sha512.New, []byte(strconv.Itoa(i)))
		mac.Write(seed)
		keys[i] = mac.Sum(nil)
	}
	return keys
}

func sortedCopy(words []field.Element) []field.Element {
	sorted := make([]field.Element, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// decimalList formats a sorted slice the way a natural list prints:
// "[w1, w2, ..., wn]", matching the domain separator scrypt is keyed on.
func decimalList(words []field.Element) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%d", uint64(w))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
