package holdem

import "math/rand/v2"

// RandDealer is the package's own [Dealer], built on the live-deck
// shuffle-and-draw idiom of cardrank's deck.go: a deck is a slice of
// remaining cards, and dealing swaps a random remaining card to the
// end and drops it instead of doing a full Fisher-Yates shuffle up front.
type RandDealer struct {
	dead uint64
	live []Card
}

// NewRandDealer creates a dealer whose live deck excludes every card
// marked true in dead. Any number of cards may be dead; [RandDealer.Deal]
// returns an error when asked for more cards than remain live.
func NewRandDealer(dead [52]bool) *RandDealer {
	d := &RandDealer{}
	for c := Card(0); c < NumCards; c++ {
		if dead[c] {
			d.dead |= uint64(1) << c
		}
	}
	d.Reset()
	return d
}

// Reset restores the live deck to every card not marked dead at
// construction, discarding any cards already dealt.
func (d *RandDealer) Reset() {
	d.live = d.live[:0]
	for c := Card(0); c < NumCards; c++ {
		if d.dead&(uint64(1)<<c) == 0 {
			d.live = append(d.live, c)
		}
	}
}

// Deal draws n distinct cards from the live deck, removing them so a
// later Deal in the same run never repeats one. Grounded on
// cleverpiggy/pokyr's deal.c: each draw swaps a randomly chosen
// remaining card to the end of the live slice and shrinks it by one,
// rather than shuffling the whole deck up front.
func (d *RandDealer) Deal(n int) ([]Card, error) {
	if n < 0 || n > len(d.live) {
		return nil, ErrInvalidCard
	}
	out := make([]Card, n)
	for i := 0; i < n; i++ {
		last := len(d.live) - 1
		j := rand.IntN(last + 1)
		out[i] = d.live[j]
		d.live[j] = d.live[last]
		d.live = d.live[:last]
	}
	return out, nil
}
