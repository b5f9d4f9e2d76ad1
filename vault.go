// Package fuzzyvault implements a fuzzy vault: it derives a set of
// cryptographic keys from an unordered set of small-integer words, and
// later re-derives the identical keys from an approximate guess of that
// set, provided the guess overlaps the original beyond a configurable
// threshold. The construction rests on a Reed-Solomon-style secure
// sketch (package sketch) and Berlekamp-Welch decoding over a prime
// field (packages field, linalg, decode); keys are produced by the
// extractor/KDF pipeline in package kdf.
package fuzzyvault

import (
	"bytes"
	"sort"

	"github.com/kepler-labs/fuzzyvault/decode"
	"github.com/kepler-labs/fuzzyvault/field"
	"github.com/kepler-labs/fuzzyvault/kdf"
	"github.com/kepler-labs/fuzzyvault/sketch"
	"github.com/kepler-labs/fuzzyvault/vaulterr"
)

// GenerateSecret validates A, builds the public state around it, and
// emits K independent keys derived from A, the params' extractor, and
// salt.
func GenerateSecret(params *InputParams, a []uint64, k int) (*PublicState, [][]byte, error) {
	if err := validateWords(a, params.SetSize, params.CorpusSize); err != nil {
		return nil, nil, err
	}
	words := toElements(params.Field, a)

	t := params.ErrorThreshold()
	sigma, err := sketch.Compute(params.Field, words, t)
	if err != nil {
		return nil, nil, err
	}

	hash, err := kdf.Hash(params.Salt, words)
	if err != nil {
		return nil, nil, err
	}

	sorted := sortedElements(words)
	e := kdf.Extractor(params.Field, sorted, params.Extractor)
	seed, err := kdf.Seed(params.Salt, e)
	if err != nil {
		return nil, nil, err
	}
	keys := kdf.ExpandKeys(seed, k)

	state := &PublicState{
		SetSize:          params.SetSize,
		CorpusSize:       params.CorpusSize,
		CorrectThreshold: params.CorrectThreshold,
		Prime:            params.Field.P,
		Sketch:           sigma,
		Extractor:        params.Extractor,
		Salt:             params.Salt,
		Hash:             hash,
	}

	Log.Info().Int("setsize", params.SetSize).Int("correctthreshold", params.CorrectThreshold).Msg("generated vault")
	return state, keys, nil
}

// RecoverSecret validates the guess A', tries the fast path (an exact
// hash match), then falls back to Berlekamp-Welch decoding against the
// stored sketch. It fails with vaulterr.HashMismatch if neither the
// guess nor the decoded set authenticates against the stored hash.
func RecoverSecret(state *PublicState, aPrime []uint64, k int) ([][]byte, error) {
	if err := validateWords(aPrime, state.SetSize, state.CorpusSize); err != nil {
		return nil, err
	}
	f, err := field.New(state.Prime)
	if err != nil {
		return nil, err
	}
	guess := toElements(f, aPrime)

	if hash, err := kdf.Hash(state.Salt, guess); err == nil && hashEqual(hash, state.Hash) {
		Log.Info().Msg("recovery matched on fast path")
		return deriveKeys(f, state, guess, k)
	}

	recovered, err := decode.Recover(f, state.Sketch, state.SetSize, state.CorrectThreshold, guess)
	if err != nil {
		Log.Warn().Err(err).Msg("decode failed during recovery")
		return nil, err
	}

	hash, err := kdf.Hash(state.Salt, recovered)
	if err != nil {
		return nil, err
	}
	if !hashEqual(hash, state.Hash) {
		return nil, vaulterr.New(vaulterr.HashMismatch, "recovered set does not authenticate against the stored hash")
	}

	Log.Info().Msg("recovery matched after decoding")
	return deriveKeys(f, state, recovered, k)
}

func deriveKeys(f *field.Field, state *PublicState, words []field.Element, k int) ([][]byte, error) {
	sorted := sortedElements(words)
	e := kdf.Extractor(f, sorted, state.Extractor)
	seed, err := kdf.Seed(state.Salt, e)
	if err != nil {
		return nil, err
	}
	return kdf.ExpandKeys(seed, k), nil
}

func sortedElements(words []field.Element) []field.Element {
	sorted := make([]field.Element, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

func hashEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}
