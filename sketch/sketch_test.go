package sketch

import (
	"testing"

	"github.com/kepler-labs/fuzzyvault/field"
)

func TestComputeLiteralScenario(t *testing.T) {
	f, err := field.New(17)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	words := []field.Element{1, 2, 3, 4, 5}
	sigma, err := Compute(f, words, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// P_A(z) mod 17 = z^5 + 2z^4 + 0z^3 + 13z^2 + 2z + 16 (see
	// field.TestFromRootsMatchesLiteralScenario); the window of degrees
	// n-t..n-1 = 3..4 is (coeff_3, coeff_4) = (0, 2).
	want := []field.Element{0, 2}
	if len(sigma) != len(want) {
		t.Fatalf("Compute returned %d coefficients, want %d", len(sigma), len(want))
	}
	for i := range want {
		if sigma[i] != want[i] {
			t.Errorf("sigma[%d] = %d, want %d", i, sigma[i], want[i])
		}
	}
}

func TestComputeRejectsOddThreshold(t *testing.T) {
	f, _ := field.New(17)
	words := []field.Element{1, 2, 3, 4, 5}
	if _, err := Compute(f, words, 3); err == nil {
		t.Errorf("expected error for odd error threshold")
	}
}

func TestReconstructPlacesSigmaWindow(t *testing.T) {
	f, err := field.New(17)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sigma := []field.Element{16, 8}
	p := Reconstruct(f, sigma, 5)
	want := []field.Element{0, 0, 0, 16, 8, 1}
	got := p.Coeffs()
	if len(got) != len(want) {
		t.Fatalf("Coeffs() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coeff[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
