package holdem

// specialK is the rank-key contribution for each of the 13 ranks
// (spec.md §3's SPECIALKS), chosen so that summing the contributions of
// any 7 ranks (with repeats) produces a value whose low 23 bits
// uniquely fingerprint that multiset.
var specialK = [13]uint32{0, 1, 5, 22, 98, 453, 2031, 8698, 22854, 83661, 262349, 636345, 1479181}

// suitOffset is the suit-key contribution for each of the 4 suits,
// scaled by 2^23 when composed into a card key (spec.md §3).
var suitOffset = [4]uint32{0, 1, 8, 57}

// suitShift is the bit position at which a suit offset is packed above
// the 23-bit rank-key sub-word.
const suitShift = 23

// rankMask isolates the low 23 bits of a composed card-key sum.
const rankMask = 0x7fffff

// cardKey returns the composite rank/suit key for a card: the low 23
// bits are the rank-key contribution, the high bits are the suit-key
// contribution (spec.md §3's "card_key").
func cardKey(c Card) uint32 {
	return specialK[c.Rank()] | suitOffset[c.Suit()]<<suitShift
}

// cardBit returns c's bit in the 52-bit rank bitmap, arranged so that a
// right shift by 13*suit followed by masking to 13 bits yields the
// 13-bit rank bitmap of only the cards of that suit (spec.md §3).
// Rank 0 (ace) occupies the high bit of its 13-bit column, so the
// per-suit rank bitmap is ace-high.
func cardBit(c Card) uint64 {
	return uint64(1) << (12 - uint(c.Rank()) + 13*uint(c.Suit()))
}

// Deck precomputes cardKey for every card 0..51, giving O(1) access to
// a card's contribution when summing a hand's key.
var Deck [NumCards]uint32

func init() {
	for c := Card(0); c < NumCards; c++ {
		Deck[c] = cardKey(c)
	}
}
