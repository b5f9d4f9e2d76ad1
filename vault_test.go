package fuzzyvault

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndRecoverExactGuess(t *testing.T) {
	params, err := NewInputParams(16, 5, 4)
	require.NoError(t, err)

	original := []uint64{1, 2, 3, 4, 5}
	state, keys, err := GenerateSecret(params, original, 1)
	require.NoError(t, err)

	recovered, err := RecoverSecret(state, original, 1)
	require.NoError(t, err)
	require.Equal(t, keys[0], recovered[0])
}

func TestRecoverOneErrorStillMatches(t *testing.T) {
	params, err := NewInputParams(16, 5, 4)
	require.NoError(t, err)

	original := []uint64{1, 2, 3, 4, 5}
	state, keys, err := GenerateSecret(params, original, 1)
	require.NoError(t, err)

	guess := []uint64{1, 2, 3, 4, 7}
	recovered, err := RecoverSecret(state, guess, 1)
	require.NoError(t, err)
	require.Equal(t, keys[0], recovered[0])
}

func TestRecoverBelowThresholdFails(t *testing.T) {
	params, err := NewInputParams(16, 5, 4)
	require.NoError(t, err)

	original := []uint64{1, 2, 3, 4, 5}
	state, _, err := GenerateSecret(params, original, 1)
	require.NoError(t, err)

	guess := []uint64{1, 2, 3, 7, 9}
	_, err = RecoverSecret(state, guess, 1)
	require.Error(t, err)
}

func TestGenerateSecretRejectsInvalidWords(t *testing.T) {
	params, err := NewInputParams(16, 5, 4)
	require.NoError(t, err)

	_, _, err = GenerateSecret(params, []uint64{1, 2, 3, 4}, 1)
	require.Error(t, err, "wrong length should fail")

	_, _, err = GenerateSecret(params, []uint64{1, 2, 3, 4, 4}, 1)
	require.Error(t, err, "duplicate word should fail")

	_, _, err = GenerateSecret(params, []uint64{1, 2, 3, 4, 99}, 1)
	require.Error(t, err, "out-of-range word should fail")
}

func TestIndependentSaltsYieldDifferentKeys(t *testing.T) {
	original := []uint64{1, 2, 3, 4, 5}

	p1, err := NewInputParams(16, 5, 4)
	require.NoError(t, err)
	_, k1, err := GenerateSecret(p1, original, 1)
	require.NoError(t, err)

	p2, err := NewInputParams(16, 5, 4)
	require.NoError(t, err)
	_, k2, err := GenerateSecret(p2, original, 1)
	require.NoError(t, err)

	require.NotEqual(t, k1[0], k2[0])
}
