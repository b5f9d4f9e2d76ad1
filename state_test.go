package fuzzyvault

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kepler-labs/fuzzyvault/field"
)

func TestPublicStateSerializationRoundTrip(t *testing.T) {
	state := &PublicState{
		SetSize:          5,
		CorpusSize:       16,
		CorrectThreshold: 4,
		Prime:            17,
		Sketch:           []field.Element{16, 8},
		Extractor:        []field.Element{2, 3, 5, 7, 11},
		Salt:             []byte{0xde, 0xad, 0xbe, 0xef},
		Hash:             []byte{0x01, 0x02, 0x03, 0x04},
	}

	encoded, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wire map[string]interface{}
	if err := json.Unmarshal(encoded, &wire); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{"setsize", "corpus_size", "correctthreshold", "prime", "sketch", "extractor", "salt", "hash"} {
		if _, ok := wire[field]; !ok {
			t.Errorf("serialized state missing field %q", field)
		}
	}
	if _, ok := wire["errorthreshold"]; ok {
		t.Errorf("errorthreshold must not be serialized")
	}
	if salt, _ := wire["salt"].(string); salt != strings.ToUpper(salt) {
		t.Errorf("salt %q is not uppercase hex", salt)
	}

	var reloaded PublicState
	if err := json.Unmarshal(encoded, &reloaded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.SetSize != state.SetSize || reloaded.CorpusSize != state.CorpusSize ||
		reloaded.CorrectThreshold != state.CorrectThreshold || reloaded.Prime != state.Prime {
		t.Errorf("scalar fields did not round-trip: got %+v", reloaded)
	}
	if reloaded.ErrorThreshold() != 2*(state.SetSize-state.CorrectThreshold) {
		t.Errorf("ErrorThreshold() = %d, want %d", reloaded.ErrorThreshold(), 2*(state.SetSize-state.CorrectThreshold))
	}
	if len(reloaded.Sketch) != len(state.Sketch) {
		t.Fatalf("sketch length mismatch after round-trip")
	}
	for i := range state.Sketch {
		if reloaded.Sketch[i] != state.Sketch[i] {
			t.Errorf("sketch[%d] = %d, want %d", i, reloaded.Sketch[i], state.Sketch[i])
		}
	}
	if string(reloaded.Salt) != string(state.Salt) {
		t.Errorf("salt did not round-trip")
	}
	if string(reloaded.Hash) != string(state.Hash) {
		t.Errorf("hash did not round-trip")
	}
}

func TestPublicStateUnmarshalAcceptsLowercaseHex(t *testing.T) {
	raw := `{"setsize":5,"corpus_size":16,"correctthreshold":4,"prime":17,"sketch":[16,8],"extractor":[2,3,5,7,11],"salt":"deadbeef","hash":"01020304"}`
	var state PublicState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		t.Fatalf("unexpected error decoding lowercase hex: %v", err)
	}
	if string(state.Salt) != string([]byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("lowercase hex salt decoded incorrectly: %x", state.Salt)
	}
}
