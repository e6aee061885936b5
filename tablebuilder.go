package holdem

import "sort"

// Canonical input sizes (spec.md §4.4): the 49,205 canonical 7-rank
// multisets that cannot form a flush, plus the 4,421 flush bitmaps and
// 298 straight-flush bitmaps drawn from the 13-bit board space.
const (
	numRankMultisets = 49205
	numFlushBucket   = 4421
	numSFBucket      = 298
)

// rankTableSize and finalFlushTableSize are the runtime table sizes
// (spec.md §3): the rank table is indexed by the low 23 bits of a
// composed card key, the flush table by a 13-bit rank bitmap.
const (
	rankTableSize       = 7825760
	finalFlushTableSize = boardTableSize
)

// tableEntry pairs a canonical lookup key with its base-evaluator
// ordinal, ready for the final sort-and-dense-rank pass.
type tableEntry struct {
	key uint32
	val uint64
}

// buildTables runs the full table-builder pipeline (spec.md §4.4) and
// returns the two runtime lookup tables that [Tables] serves from.
// Grounded on cleverpiggy/pokyr's build_table.c: compute_ranks,
// compute_flushes, populate_tables.
func buildTables() (rankTable []uint16, flushTable []uint16) {
	rankEntries := enumerateRankMultisets()
	flushEntries, sfEntries := enumerateFlushBuckets()
	if len(rankEntries) != numRankMultisets {
		panic("holdem: expected 49205 canonical rank multisets")
	}
	if len(flushEntries) != numFlushBucket {
		panic("holdem: expected 4421 flush bitmaps")
	}
	if len(sfEntries) != numSFBucket {
		panic("holdem: expected 298 straight-flush bitmaps")
	}

	sort.Slice(rankEntries, func(i, j int) bool {
		if rankEntries[i].val != rankEntries[j].val {
			return rankEntries[i].val < rankEntries[j].val
		}
		return rankEntries[i].key < rankEntries[j].key
	})
	sort.Slice(flushEntries, func(i, j int) bool {
		if flushEntries[i].val != flushEntries[j].val {
			return flushEntries[i].val < flushEntries[j].val
		}
		return flushEntries[i].key < flushEntries[j].key
	})
	sort.Slice(sfEntries, func(i, j int) bool {
		if sfEntries[i].val != sfEntries[j].val {
			return sfEntries[i].val < sfEntries[j].val
		}
		return sfEntries[i].key < sfEntries[j].key
	})

	rankTable = make([]uint16, rankTableSize)
	flushTable = make([]uint16, finalFlushTableSize)

	var ordinal uint16
	var prev uint64
	first := true
	assign := func(val uint64) uint16 {
		if first || val != prev {
			ordinal++
			prev = val
			first = false
		}
		return ordinal
	}

	flushSpliced := false
	for _, e := range rankEntries {
		if !flushSpliced && e.val > fullThreshold {
			for _, f := range flushEntries {
				flushTable[f.key] = assign(f.val)
			}
			flushSpliced = true
		}
		rankTable[e.key] = assign(e.val)
	}
	if !flushSpliced {
		for _, f := range flushEntries {
			flushTable[f.key] = assign(f.val)
		}
	}
	for _, f := range sfEntries {
		flushTable[f.key] = assign(f.val)
	}
	return rankTable, flushTable
}

// enumerateRankMultisets walks the 7-from-13 non-decreasing rank
// combinations, skipping any multiset that needs 5 or more of one rank
// (impossible with 4 suits), and scores each with a deterministically
// off-suited concrete hand so [baseEvaluate7] never sees an accidental
// flush.
func enumerateRankMultisets() []tableEntry {
	entries := make([]tableEntry, 0, numRankMultisets)
	var ranks [7]int
	var counts [13]int
	offsuit := 0
	var walk func(pos, min int)
	walk = func(pos, min int) {
		if pos == 7 {
			for _, c := range counts {
				if c >= 5 {
					return
				}
			}
			var key uint32
			var cards [7]Card
			for i, r := range ranks {
				key += specialK[r]
				cards[i] = New(Rank(r), Suit(offsuit%4))
				offsuit++
			}
			val := baseEvaluate7(cards)
			entries = append(entries, tableEntry{key: key & rankMask, val: val})
			return
		}
		for r := min; r < 13; r++ {
			ranks[pos] = r
			counts[r]++
			walk(pos+1, r)
			counts[r]--
		}
	}
	walk(0, 0)
	return entries
}

// enumerateFlushBuckets scores every reachable flush bitmap with
// [baseEvaluate7] on a concrete all-one-suit hand (padded with
// deterministic off-suit filler when fewer than 7 ranks are set),
// splitting straight-flush bitmaps into their own bucket.
func enumerateFlushBuckets() (flushes, straightFlushes []tableEntry) {
	for b := 0; b < boardTableSize; b++ {
		if flushSeed[b] == 0 {
			continue
		}
		cards := concreteFlushHand(uint16(b))
		val := baseEvaluate7(cards)
		e := tableEntry{key: uint32(b), val: val}
		if straightTable[b] != 0 {
			straightFlushes = append(straightFlushes, e)
		} else {
			flushes = append(flushes, e)
		}
	}
	return flushes, straightFlushes
}

// concreteFlushHand builds a 7-card hand whose spades form exactly the
// ranks set in bm, padding with off-suit filler cards of ranks not in
// bm so the hand always has exactly 7 cards and never a second flush
// suit.
func concreteFlushHand(bm uint16) [7]Card {
	var cards [7]Card
	n := 0
	for r := 0; r < 13; r++ {
		if bm&(1<<(12-r)) != 0 {
			cards[n] = New(Rank(r), Spades)
			n++
		}
	}
	filler := Clubs
	for r := 0; n < 7; r++ {
		if bm&(1<<(12-r)) != 0 {
			continue
		}
		cards[n] = New(Rank(r), filler)
		n++
		if filler == Clubs {
			filler = Diamonds
		} else {
			filler = Clubs
		}
	}
	return cards
}
