package field

import (
	"sort"
	"testing"
)

func elementSet(es []Element) map[Element]bool {
	m := make(map[Element]bool, len(es))
	for _, e := range es {
		m[e] = true
	}
	return m
}

func TestHasRepeatedRootsDetectsSquare(t *testing.T) {
	f := mustField(t, 17)
	squarefree := FromRoots(f, []Element{1, 2, 3, 4})
	repeated, err := HasRepeatedRoots(squarefree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repeated {
		t.Errorf("squarefree polynomial reported as having repeated roots")
	}

	withSquare := FromRoots(f, []Element{1, 1, 2, 3}) // (z-1)^2(z-2)(z-3)
	repeated, err = HasRepeatedRoots(withSquare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repeated {
		t.Errorf("polynomial with a repeated root not detected")
	}
}

func TestRootsOfSquarefreeMatchesBruteForce(t *testing.T) {
	f := mustField(t, 17)
	roots := []Element{1, 2, 3, 4, 5}
	p := FromRoots(f, roots)

	viaFactoring, err := RootsOfSquarefree(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viaBruteForce := BruteForceRoots(p)

	a, b := elementSet(viaFactoring), elementSet(viaBruteForce)
	if len(a) != len(roots) || len(b) != len(roots) {
		t.Fatalf("root counts differ: factoring=%d brute=%d want=%d", len(a), len(b), len(roots))
	}
	for r := range a {
		if !b[r] {
			t.Errorf("factoring found root %d not found by brute force", r)
		}
	}

	sortedWant := append([]Element{}, roots...)
	sort.Slice(sortedWant, func(i, j int) bool { return sortedWant[i] < sortedWant[j] })
	for _, r := range sortedWant {
		if !a[r] {
			t.Errorf("expected root %d missing from factoring result", r)
		}
	}
}
