package holdem

// MaxHands is the largest number of simultaneous hands a multi-way
// driver accepts.
const MaxHands = 22

// RiverResult is a single opponent's outcome against a fixed hero hand
// on a complete board, as produced by [Tables.RiverValue].
type RiverResult struct {
	Wins uint32
	Ties uint32
}

// checkDuplicates validates that every card is in range and appears at
// most once across the whole call. Every equity driver runs its inputs
// through this single utility rather than re-deriving the check, per
// spec.md §9's note to centralize duplicate-card detection.
func checkDuplicates(cards ...Card) error {
	var seen uint64
	for _, c := range cards {
		if !c.Valid() {
			return ErrInvalidCard
		}
		bit := uint64(1) << c
		if seen&bit != 0 {
			return ErrDuplicateCards
		}
		seen |= bit
	}
	return nil
}

// deadMask returns a 52-bit mask with a bit set for every card in cards,
// for callers that need to test membership rather than enumerate.
func deadMask(cards []Card) uint64 {
	var m uint64
	for _, c := range cards {
		m |= uint64(1) << c
	}
	return m
}

// Showdown compares two hole hands on a complete board, returning 0 if
// h1 wins, 1 if h2 wins, or 2 on a tie.
func (t *Tables) Showdown(h1, h2 [2]Card, board [5]Card) (int, error) {
	if err := checkDuplicates(h1[0], h1[1], h2[0], h2[1], board[0], board[1], board[2], board[3], board[4]); err != nil {
		return 0, err
	}
	p := NewBoardPartial(board[:])
	v1 := t.Add2(p, h1[0], h1[1])
	v2 := t.Add2(p, h2[0], h2[1])
	switch {
	case v1 > v2:
		return 0, nil
	case v2 > v1:
		return 1, nil
	default:
		return 2, nil
	}
}

// MultiShowdown compares any number of hole hands (up to [MaxHands]) on
// a complete board, returning the indices of every hand tied for best.
func (t *Tables) MultiShowdown(hands [][2]Card, board [5]Card) ([]int, error) {
	if len(hands) == 0 || len(hands) > MaxHands {
		return nil, ErrTooManyHands
	}
	all := make([]Card, 0, 2*len(hands)+5)
	for _, h := range hands {
		all = append(all, h[0], h[1])
	}
	all = append(all, board[0], board[1], board[2], board[3], board[4])
	if err := checkDuplicates(all...); err != nil {
		return nil, err
	}
	p := NewBoardPartial(board[:])
	best := EvalRank(0)
	ranks := make([]EvalRank, len(hands))
	for i, h := range hands {
		r := t.Add2(p, h[0], h[1])
		ranks[i] = r
		if r > best {
			best = r
		}
	}
	var winners []int
	for i, r := range ranks {
		if r == best {
			winners = append(winners, i)
		}
	}
	return winners, nil
}

// RiverValue scores hand against every one of the C(45,2) = 990
// possible two-card opponent hands on a complete board, counting wins
// and ties. Grounded on poker_heavy.c's rivervalue, which hoists the
// board once and streams opponent pairs through it.
func (t *Tables) RiverValue(hand [2]Card, board [5]Card) (RiverResult, error) {
	if err := checkDuplicates(hand[0], hand[1], board[0], board[1], board[2], board[3], board[4]); err != nil {
		return RiverResult{}, err
	}
	used := deadMask(append([]Card{hand[0], hand[1]}, board[:]...))
	p := NewBoardPartial(board[:])
	myRank := t.Add2(p, hand[0], hand[1])
	var res RiverResult
	for i := Card(0); i < NumCards; i++ {
		if used&(uint64(1)<<i) != 0 {
			continue
		}
		for j := i + 1; j < NumCards; j++ {
			if used&(uint64(1)<<j) != 0 {
				continue
			}
			his := t.Add2(p, i, j)
			switch {
			case myRank > his:
				res.Wins++
			case myRank == his:
				res.Ties++
			}
		}
	}
	return res, nil
}

// FullEnumerate computes exact equity for every hand in hands by
// enumerating every possible completion of boardPrefix (0 to 4 cards)
// to a full 5-card board, splitting each runout's unit of equity among
// its tied winners. Grounded on poker_heavy.c's preflop_match and
// full_enumerate's nested runout loops.
func (t *Tables) FullEnumerate(hands [][2]Card, boardPrefix []Card) ([]float64, error) {
	if len(hands) == 0 || len(hands) > MaxHands {
		return nil, ErrTooManyHands
	}
	if len(boardPrefix) > 5 {
		return nil, ErrInvalidCard
	}
	all := make([]Card, 0, 2*len(hands)+len(boardPrefix))
	for _, h := range hands {
		all = append(all, h[0], h[1])
	}
	all = append(all, boardPrefix...)
	if err := checkDuplicates(all...); err != nil {
		return nil, err
	}
	equity := make([]float64, len(hands))
	if len(hands) == 1 {
		equity[0] = 1
		return equity, nil
	}
	if len(boardPrefix) == 5 {
		board := [5]Card(boardPrefix)
		winners, err := t.MultiShowdown(hands, board)
		if err != nil {
			return nil, err
		}
		share := 1.0 / float64(len(winners))
		for _, w := range winners {
			equity[w] = share
		}
		return equity, nil
	}
	if len(hands) == 2 && len(boardPrefix) == 0 {
		return t.fullEnumerateHeadsUpPreflop(hands)
	}
	used := deadMask(all)
	var avail []Card
	for c := Card(0); c < NumCards; c++ {
		if used&(uint64(1)<<c) == 0 {
			avail = append(avail, c)
		}
	}
	need := 5 - len(boardPrefix)
	var runs int
	err := forEachCombination(avail, need, func(combo []Card) error {
		board := make([]Card, 0, 5)
		board = append(board, boardPrefix...)
		board = append(board, combo...)
		var b [5]Card
		copy(b[:], board)
		winners, err := t.MultiShowdown(hands, b)
		if err != nil {
			return err
		}
		share := 1.0 / float64(len(winners))
		for _, w := range winners {
			equity[w] += share
		}
		runs++
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i := range equity {
		equity[i] /= float64(runs)
	}
	return equity, nil
}

// fullEnumerateHeadsUpPreflop is the fast specialization of spec.md §4.6
// for the common 2-hand, empty-board case: it inlines a cached
// (val_sum, bitmap_sum) per hand, the same nested-loop structure as
// poker_heavy.c's preflop_match, instead of routing through the general
// combination-generator path.
func (t *Tables) fullEnumerateHeadsUpPreflop(hands [][2]Card) ([]float64, error) {
	used := deadMask([]Card{hands[0][0], hands[0][1], hands[1][0], hands[1][1]})
	var avail []Card
	for c := Card(0); c < NumCards; c++ {
		if used&(uint64(1)<<c) == 0 {
			avail = append(avail, c)
		}
	}
	v0sum, b0sum := Deck[hands[0][0]]+Deck[hands[0][1]], cardBit(hands[0][0])|cardBit(hands[0][1])
	v1sum, b1sum := Deck[hands[1][0]]+Deck[hands[1][1]], cardBit(hands[1][0])|cardBit(hands[1][1])
	var wins0, wins1, ties int
	n := len(avail)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					for m := l + 1; m < n; m++ {
						c0, c1, c2, c3, c4 := avail[i], avail[j], avail[k], avail[l], avail[m]
						boardVal := Deck[c0] + Deck[c1] + Deck[c2] + Deck[c3] + Deck[c4]
						boardBits := cardBit(c0) | cardBit(c1) | cardBit(c2) | cardBit(c3) | cardBit(c4)
						r0 := evalFromSum(v0sum+boardVal, b0sum|boardBits)
						r1 := evalFromSum(v1sum+boardVal, b1sum|boardBits)
						switch {
						case r0 > r1:
							wins0++
						case r1 > r0:
							wins1++
						default:
							ties++
						}
					}
				}
			}
		}
	}
	total := float64(wins0 + wins1 + ties)
	return []float64{
		(float64(wins0) + float64(ties)/2) / total,
		(float64(wins1) + float64(ties)/2) / total,
	}, nil
}

// evalFromSum evaluates a hand given its precomputed composed-key sum
// and 52-bit card bitmap, without needing the concrete card array.
func evalFromSum(val uint32, bitmap uint64) EvalRank {
	if sh := isFlushTable[val>>suitShift]; sh != noFlush {
		b := (bitmap >> uint(sh)) & cardMask13
		return EvalRank(flushTable[b])
	}
	return EvalRank(rankTable[val&rankMask])
}

// Dealer is the RNG/deck collaborator used by [Tables.MonteCarlo].
// Implementations deal distinct cards from a live deck that excludes a
// fixed set of dead cards; [deck.go]'s [RandDealer] is the package's
// own implementation.
type Dealer interface {
	// Deal returns n distinct cards drawn from the dealer's current
	// live deck, removing them from future deals.
	Deal(n int) ([]Card, error)
	// Reset restores the dealer's live deck to every card not marked
	// dead at construction.
	Reset()
}

// MonteCarlo estimates equity for every hand in hands by dealing nruns
// independent random 5-card boards through d.
func (t *Tables) MonteCarlo(hands [][2]Card, nruns int, d Dealer) ([]float64, error) {
	if len(hands) == 0 || len(hands) > MaxHands {
		return nil, ErrTooManyHands
	}
	all := make([]Card, 0, 2*len(hands))
	for _, h := range hands {
		all = append(all, h[0], h[1])
	}
	if err := checkDuplicates(all...); err != nil {
		return nil, err
	}
	equity := make([]float64, len(hands))
	for run := 0; run < nruns; run++ {
		d.Reset()
		board, err := d.Deal(5)
		if err != nil {
			return nil, err
		}
		var b [5]Card
		copy(b[:], board)
		winners, err := t.MultiShowdown(hands, b)
		if err != nil {
			return nil, err
		}
		share := 1.0 / float64(len(winners))
		for _, w := range winners {
			equity[w] += share
		}
	}
	for i := range equity {
		equity[i] /= float64(nruns)
	}
	return equity, nil
}

// RiverDistribution buckets every one of hand's C(45,2) river opponents
// into the preflop starting-hand group g assigns it, counting 2 for
// each opponent hand hero beats (strictly below hero) and 1 for each tie,
// matching the river_distribution convention of poker_heavy.c. The
// canonical position of opponent (i, j) in g is tracked incrementally
// rather than recomputed per pair, skipping whole rows of dead cards in
// one step (poker_heavy.c's river_distribution dict_i stepping).
func (t *Tables) RiverDistribution(hand [2]Card, board [5]Card, g *GroupTable) ([]uint32, error) {
	if err := checkDuplicates(hand[0], hand[1], board[0], board[1], board[2], board[3], board[4]); err != nil {
		return nil, err
	}
	if g == nil || !g.valid {
		return nil, ErrBadGroupTable
	}
	used := deadMask(append([]Card{hand[0], hand[1]}, board[:]...))
	p := NewBoardPartial(board[:])
	myRank := t.Add2(p, hand[0], hand[1])
	chart := make([]uint32, g.maxGroup+1)
	dictI := 0
	for i := Card(0); i < NumCards; i++ {
		if used&(uint64(1)<<i) != 0 {
			dictI += int(NumCards) - int(i) - 1
			continue
		}
		for j := i + 1; j < NumCards; j++ {
			if used&(uint64(1)<<j) != 0 {
				dictI++
				continue
			}
			his := t.Add2(p, i, j)
			grp := g.groups[dictI]
			switch {
			case myRank > his:
				chart[grp] += 2
			case myRank == his:
				chart[grp]++
			}
			dictI++
		}
	}
	return chart, nil
}
