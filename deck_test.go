package holdem

import "testing"

func TestRandDealerExcludesDead(t *testing.T) {
	var dead [52]bool
	dead[mustCard(t, "Ah")] = true
	dead[mustCard(t, "As")] = true
	d := NewRandDealer(dead)
	for i := 0; i < 10; i++ {
		cards, err := d.Deal(5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, c := range cards {
			if dead[c] {
				t.Fatalf("Deal returned a dead card: %v", c)
			}
		}
		d.Reset()
	}
}

func TestRandDealerNoDuplicatesWithinDeal(t *testing.T) {
	var dead [52]bool
	d := NewRandDealer(dead)
	cards, err := d.Deal(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := checkDuplicates(cards...); err != nil {
		t.Errorf("Deal produced duplicate cards: %v", err)
	}
}

func TestRandDealerExhaustsLiveDeck(t *testing.T) {
	var dead [52]bool
	for c := Card(0); c < 50; c++ {
		dead[c] = true
	}
	d := NewRandDealer(dead)
	cards, err := d.Deal(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got: %d", len(cards))
	}
	if _, err := d.Deal(1); err == nil {
		t.Error("expected an error when dealing past the live deck")
	}
}

func TestRandDealerResetRestoresCount(t *testing.T) {
	var dead [52]bool
	dead[0] = true
	d := NewRandDealer(dead)
	if _, err := d.Deal(51); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d.Reset()
	if len(d.live) != 51 {
		t.Errorf("expected 51 live cards after reset, got: %d", len(d.live))
	}
}
