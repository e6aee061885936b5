package holdem

import (
	"os"
	"strings"
	"testing"
)

func TestEvaluate7MatchesBaseEvaluateOrder(t *testing.T) {
	tests := []string{
		"As Ks Qs Js Ts 2c 3d",
		"Ah Ac Ad As Kh 2c 3d",
		"Ah Ac Ad Kh Kc 2c 3d",
		"2s 5s 7s 9s Ks 2c 3d",
		"9h 8c 7d 6s 5h 2c 3d",
		"Ah Ac Kh Qd 2s 3c 4d",
		"Ah Kc Qd Js 9s 2c 4d",
	}
	tb := NewTables()
	var prevFast EvalRank
	var prevBase uint64
	for i, s := range tests {
		cards := mustCards(t, s)
		fast := tb.Evaluate7(cards)
		base := baseEvaluate7(cards)
		if i > 0 {
			fastOrder := fast > prevFast
			baseOrder := base > prevBase
			if fastOrder != baseOrder && fast != prevFast {
				t.Errorf("%s: fast/base relative order disagree with previous hand", s)
			}
		}
		prevFast, prevBase = fast, base
	}
}

func TestEvaluate7Suited(t *testing.T) {
	a := mustCards(t, "As Ks Qs Js Ts 2c 3d")
	b := mustCards(t, "Ah Kh Qh Jh Th 2c 3d")
	tb := NewTables()
	if tb.Evaluate7(a) != tb.Evaluate7(b) {
		t.Errorf("two royal flushes of different suits should rank equal: %d vs %d", tb.Evaluate7(a), tb.Evaluate7(b))
	}
}

func TestBoardPartialMatchesEvaluate7(t *testing.T) {
	board := []Card{mustCard(t, "2c"), mustCard(t, "5d"), mustCard(t, "9h"), mustCard(t, "Jc"), mustCard(t, "Ks")}
	hole0, hole1 := mustCard(t, "Ah"), mustCard(t, "As")
	tb := NewTables()
	p := NewBoardPartial(board)
	got := tb.Add2(p, hole0, hole1)
	var full [7]Card
	copy(full[:5], board)
	full[5], full[6] = hole0, hole1
	want := tb.Evaluate7(full)
	if got != want {
		t.Errorf("BoardPartial.Add2 = %d, expected %d", got, want)
	}
}

func mustCard(t *testing.T, s string) Card {
	t.Helper()
	c, err := ParseCard(s)
	if err != nil {
		t.Fatalf("ParseCard(%q): %v", s, err)
	}
	return c
}

// TestEvaluate7ExhaustiveDensity checks every one of the C(52,7) 7-card
// hands evaluates to a nonzero ordinal and that the image has roughly
// the expected ~4,824 distinct values. It is gated behind $TESTS like
// cactus_test.go's TestCactus, since it touches well over 100 million
// hands.
func TestEvaluate7ExhaustiveDensity(t *testing.T) {
	if s := os.Getenv("TESTS"); !strings.Contains(s, "eval") && !strings.Contains(s, "all") {
		t.Skip("skipping: $TESTS does not contain 'eval' or 'all'")
	}
	tb := NewTables()
	seen := make(map[EvalRank]bool)
	for c0 := Card(0); c0 < NumCards; c0++ {
		for c1 := c0 + 1; c1 < NumCards; c1++ {
			for c2 := c1 + 1; c2 < NumCards; c2++ {
				for c3 := c2 + 1; c3 < NumCards; c3++ {
					for c4 := c3 + 1; c4 < NumCards; c4++ {
						for c5 := c4 + 1; c5 < NumCards; c5++ {
							for c6 := c5 + 1; c6 < NumCards; c6++ {
								r := tb.Evaluate7([7]Card{c0, c1, c2, c3, c4, c5, c6})
								if r == 0 {
									t.Fatalf("hand %v %v %v %v %v %v %v evaluated to 0", c0, c1, c2, c3, c4, c5, c6)
								}
								seen[r] = true
							}
						}
					}
				}
			}
		}
	}
	if len(seen) < 4000 || len(seen) > 5500 {
		t.Errorf("expected around 4,824 distinct ordinals, got: %d", len(seen))
	}
}
