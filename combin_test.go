package holdem

import "testing"

func TestBinGenCount(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	g, d := newBinGen(s, 3)
	count := 0
	for g.Next() {
		count++
		if len(d) != 3 {
			t.Fatalf("expected 3 elements, got: %d", len(d))
		}
	}
	if count != 10 { // C(5,3) = 10
		t.Errorf("expected 10 combinations, got: %d", count)
	}
}

func TestForEachCombinationVisitsAll(t *testing.T) {
	s := []int{1, 2, 3, 4}
	seen := make(map[[2]int]bool)
	err := forEachCombination(s, 2, func(combo []int) error {
		seen[[2]int{combo[0], combo[1]}] = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 6 { // C(4,2) = 6
		t.Errorf("expected 6 combinations, got: %d", len(seen))
	}
}
