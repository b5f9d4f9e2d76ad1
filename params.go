package fuzzyvault

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/kepler-labs/fuzzyvault/field"
	"github.com/kepler-labs/fuzzyvault/vaulterr"
)

// InputParams fixes the shape of one vault: the field it operates over,
// the set size, the correct threshold, and the per-vault randomness
// (salt and extractor) drawn once at construction. The OS random source
// is used here for two things only — one read for the salt and a
// rejection-sampling loop for the extractor — and nowhere else in the
// package.
type InputParams struct {
	Field            *field.Field
	CorpusSize       int
	SetSize          int
	CorrectThreshold int
	Salt             []byte
	Extractor        []field.Element
}

const saltLen = 32

// NewInputParams validates n and c, derives p as the least prime
// strictly greater than corpusSize, and draws a fresh salt and
// extractor from crypto/rand.
func NewInputParams(corpusSize, n, c int) (*InputParams, error) {
	if n < 0 {
		return nil, vaulterr.New(vaulterr.BadSize, "set size %d is negative", n)
	}
	if c < 1 || 2*c <= n {
		return nil, vaulterr.New(vaulterr.BadCorrectThreshold, "correct threshold %d invalid for set size %d", c, n)
	}

	p := field.FirstPrimeGreaterThan(uint64(corpusSize))
	f, err := field.New(p)
	if err != nil {
		return nil, err
	}
	if uint64(n) >= p {
		return nil, vaulterr.New(vaulterr.BadSize, "set size %d must be less than the field prime %d", n, p)
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("error drawing salt: %v", err)
	}

	extractor, err := randomDistinctElements(f, n)
	if err != nil {
		return nil, fmt.Errorf("error drawing extractor: %v", err)
	}

	return &InputParams{
		Field:            f,
		CorpusSize:       corpusSize,
		SetSize:          n,
		CorrectThreshold: c,
		Salt:             salt,
		Extractor:        extractor,
	}, nil
}

// ErrorThreshold returns t = 2(n-c), the derived, never-serialized error
// threshold.
func (p *InputParams) ErrorThreshold() int {
	return 2 * (p.SetSize - p.CorrectThreshold)
}

// randomDistinctElements draws n distinct elements of GF(f.P) uniformly
// without replacement, via rejection sampling over crypto/rand.
func randomDistinctElements(f *field.Field, n int) ([]field.Element, error) {
	seen := make(map[field.Element]bool, n)
	out := make([]field.Element, 0, n)
	max := big.NewInt(int64(f.P))
	for len(out) < n {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			return nil, err
		}
		e := field.Element(v.Uint64())
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out, nil
}
