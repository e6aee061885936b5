package holdem

// Hand categories, ace-high straight flush on top, packed into the high
// bits of a 64-bit category ordinal (spec.md §4.2).
const (
	catHighCard uint64 = iota
	catPair
	catTwoPair
	catTrips
	catStraight
	catFlush
	catFullHouse
	catQuads
	catStraightFlush
)

// rankShift is the bit at which a hand category sits in a base-evaluator
// ordinal; everything below it is the intra-category tiebreak.
const rankShift = 52

// fullThreshold is the build-time boundary between full-house and flush
// in absolute base-evaluator ordering (spec.md §4.4 step 3).
const fullThreshold = catFullHouse << rankShift

// Phase-2 column thresholds (spec.md §4.2): a 52-bit value is divided
// into four 13-bit columns (singles, pairs, trips, quads), and these
// mark the first bit of each column.
const (
	minPair  uint64 = 1 << 13
	minTrips uint64 = 1 << 26
	minQuads uint64 = 1 << 39
)

// cardMask13 isolates one 13-bit phase-2 column.
const cardMask13 uint64 = 0x1fff

// rankBit13 returns c's bit within a 13-bit, ace-high rank bitmap: ace
// occupies the high bit (bit 12), deuce the low bit (bit 0).
func rankBit13(c Card) uint64 {
	return uint64(1) << (12 - uint(c.Rank()))
}

// lowBit returns the lowest set bit of x, or 0 if x is 0. This is the
// phase-2 "lowbits" operation of spec.md §4.2, done with two's
// complement arithmetic instead of the original's precomputed
// 8192-entry lookup table; spec.md §4.2 permits any equivalent
// mapping of the multiset value to the same relative order.
func lowBit(x uint64) uint64 {
	return x & (-x)
}

// singleRank reports whether field has exactly one bit set. Callers
// only invoke this on fields already known to be nonzero.
func singleRank(field uint64) bool {
	return field == lowBit(field)
}

// baseEvaluate7 scores a concrete 7-card hand into a 64-bit category
// ordinal: the hand category occupies bits 52 and up, the intra-category
// tiebreak the bits below. It is used exclusively by the table builder
// (tablebuilder.go) to score the canonical rank multisets and flush
// bitmaps that seed the runtime tables; [Evaluate7] never calls it.
//
// Grounded on cleverpiggy/pokyr's poker_lite.c: handvalue/dohand for the
// flush/straight/phase2 control flow, phase2 for the multiset reduction.
func baseEvaluate7(cards [7]Card) uint64 {
	var suitSum uint32
	for _, c := range cards {
		suitSum += suitOffset[c.Suit()]
	}
	if sh := isFlushTable[suitSum]; sh != noFlush {
		var bitmap uint64
		for _, c := range cards {
			bitmap |= cardBit(c)
		}
		b := (bitmap >> uint(sh)) & cardMask13
		if straightTable[b] != 0 {
			return catStraightFlush<<rankShift | uint64(straightTable[b])
		}
		return catFlush<<rankShift | uint64(flushSeed[b])
	}
	var rankOr uint64
	for _, c := range cards {
		rankOr |= rankBit13(c)
	}
	if straightTable[rankOr] != 0 {
		return catStraight<<rankShift | uint64(straightTable[rankOr])
	}
	var val uint64
	for _, c := range cards {
		r := rankBit13(c)
		for r&val != 0 {
			r <<= 13
		}
		val |= r
	}
	// Reduce the less-paired status of the more-paired column into the
	// less-paired one before the phase-2 category switch.
	return phase2(val ^ (val >> 13))
}

// phase2 reduces a 52-bit multiset value (four stacked 13-bit columns:
// singles, pairs, trips, quads) to a category-tagged ordinal. Ported
// from poker_lite.c's phase2.
func phase2(val uint64) uint64 {
	if val < minPair {
		val ^= lowBit(val)
		val ^= lowBit(val)
		return val
	}
	if val < minTrips {
		pairs := val >> 13
		if singleRank(pairs) {
			kickers := val & cardMask13
			val ^= lowBit(kickers)
			kickers ^= lowBit(kickers)
			val ^= lowBit(kickers)
			return catPair<<rankShift | val
		}
		if singleRank(pairs ^ lowBit(pairs)) {
			kickers := val & cardMask13
			val ^= lowBit(kickers)
			kickers ^= lowBit(kickers)
			val ^= lowBit(kickers)
			return catTwoPair<<rankShift | val
		}
		// Three pair: demote the lowest pair's rank back to singles.
		p := lowBit(pairs)
		val ^= p << 13
		val |= p
		kickers := val & cardMask13
		val ^= lowBit(kickers)
		return catTwoPair<<rankShift | val
	}
	if val < minQuads {
		trips := val >> 26
		if !singleRank(trips) {
			// Two sets of trips: the lower one plays as a pair.
			val |= lowBit(trips) << 13
			val ^= lowBit(trips) << 26
			kickers := val & cardMask13
			val ^= lowBit(kickers)
			return catFullHouse<<rankShift | val
		}
		pairs := (val >> 13) & cardMask13
		if pairs != 0 && singleRank(pairs) {
			kickers := val & cardMask13
			val ^= lowBit(kickers)
			kickers ^= lowBit(kickers)
			val ^= lowBit(kickers)
			return catFullHouse<<rankShift | val
		}
		if pairs != 0 {
			// Trips plus two pair: the better pair completes the boat.
			val ^= lowBit(pairs) << 13
			return catFullHouse<<rankShift | val
		}
		kickers := val & cardMask13
		val ^= lowBit(kickers)
		kickers ^= lowBit(kickers)
		val ^= lowBit(kickers)
		return catTrips<<rankShift | val
	}
	// Quads: the best remaining card of the other three kicks.
	kickers := (val & cardMask13) | ((val >> 13) & cardMask13) | ((val >> 26) & cardMask13)
	for lowBit(kickers) != kickers {
		kickers ^= lowBit(kickers)
	}
	val &= cardMask13 << 39
	val |= kickers
	return catQuads<<rankShift | val
}
