package fuzzyvault

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/kepler-labs/fuzzyvault/field"
	"github.com/kepler-labs/fuzzyvault/vaulterr"
)

// PublicState is everything GenerateSecret produces and RecoverSecret
// consumes: it owns its salt, extractor, sketch, and hash exclusively.
// The error threshold is never stored; it is always recomputed from
// SetSize and CorrectThreshold on load.
type PublicState struct {
	SetSize          int
	CorpusSize       int
	CorrectThreshold int
	Prime            uint64
	Sketch           []field.Element
	Extractor        []field.Element
	Salt             []byte
	Hash             []byte
}

// ErrorThreshold returns t = 2(n-c).
func (s *PublicState) ErrorThreshold() int {
	return 2 * (s.SetSize - s.CorrectThreshold)
}

// publicStateWire is the exact textual shape a PublicState round-trips
// through: named fields, sketch/extractor as integer sequences, and
// salt/hash as hex strings. Byte-to-hex encoding is always uppercase;
// hex-to-byte decoding is case-insensitive (encoding/hex already decodes
// either case, so only the encode side needs the explicit upper-casing).
type publicStateWire struct {
	SetSize          int      `json:"setsize"`
	CorpusSize       int      `json:"corpus_size"`
	CorrectThreshold int      `json:"correctthreshold"`
	Prime            uint64   `json:"prime"`
	Sketch           []uint64 `json:"sketch"`
	Extractor        []uint64 `json:"extractor"`
	Salt             string   `json:"salt"`
	Hash             string   `json:"hash"`
}

// MarshalJSON implements the wire format described above.
func (s *PublicState) MarshalJSON() ([]byte, error) {
	w := publicStateWire{
		SetSize:          s.SetSize,
		CorpusSize:       s.CorpusSize,
		CorrectThreshold: s.CorrectThreshold,
		Prime:            s.Prime,
		Sketch:           elementsToUint64(s.Sketch),
		Extractor:        elementsToUint64(s.Extractor),
		Salt:             upperHex(s.Salt),
		Hash:             upperHex(s.Hash),
	}
	return json.Marshal(w)
}

// UnmarshalJSON parses the wire format. Prime is stored as a plain
// integer; no *field.Field is constructed here, and primality is checked
// wherever the state is handed to a field-consuming operation.
func (s *PublicState) UnmarshalJSON(data []byte) error {
	var w publicStateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	salt, err := hex.DecodeString(w.Salt)
	if err != nil {
		return vaulterr.New(vaulterr.BadLength, "salt is not valid hex: %v", err)
	}
	hash, err := hex.DecodeString(w.Hash)
	if err != nil {
		return vaulterr.New(vaulterr.BadLength, "hash is not valid hex: %v", err)
	}
	s.SetSize = w.SetSize
	s.CorpusSize = w.CorpusSize
	s.CorrectThreshold = w.CorrectThreshold
	s.Prime = w.Prime
	s.Sketch = uint64ToElements(w.Sketch)
	s.Extractor = uint64ToElements(w.Extractor)
	s.Salt = salt
	s.Hash = hash
	return nil
}

func elementsToUint64(es []field.Element) []uint64 {
	out := make([]uint64, len(es))
	for i, e := range es {
		out[i] = uint64(e)
	}
	return out
}

func uint64ToElements(vs []uint64) []field.Element {
	out := make([]field.Element, len(vs))
	for i, v := range vs {
		out[i] = field.Element(v)
	}
	return out
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
