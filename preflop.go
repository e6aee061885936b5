package holdem

// NumStartingHands is the number of distinct unordered two-card
// starting hands: C(52,2) = 1326.
const NumStartingHands = 1326

// MaxGroups is the largest group id a [GroupTable] entry may hold.
const MaxGroups = 32

// startingHandIndex returns the canonical position of the unordered
// pair (a, b), a < b, in [0, NumStartingHands). Grounded on
// cpokermod.c's GET_INDEX macro.
func startingHandIndex(a, b Card) int {
	ai, bi := int(a), int(b)
	return ai*52 - ai*(ai+1)/2 + bi - ai - 1
}

// GroupTable partitions the 1,326 starting hands into preflop
// equivalence groups (0..MaxGroups), used by [Tables.RiverDistribution] to
// bucket river results by starting-hand category.
//
// Unlike cpokermod.c's set_dict, which memoizes group lookups by the
// pointer identity of the last Python dict/list object it saw,
// GroupTable is built once from an explicit value and never caches by
// identity: two GroupTable values built from equal data behave
// identically, and there is nothing in this type a caller could
// accidentally alias into stale state.
type GroupTable struct {
	groups   [NumStartingHands]int
	maxGroup int
	valid    bool
}

// NewGroupTableFromSlice builds a GroupTable from a dense slice indexed
// by [startingHandIndex], requiring exactly 1,326 entries each in
// [0, MaxGroups].
func NewGroupTableFromSlice(vals [NumStartingHands]int) (*GroupTable, error) {
	g := &GroupTable{groups: vals}
	for _, v := range vals {
		if v < 0 || v > MaxGroups {
			return nil, ErrBadGroupTable
		}
		if v > g.maxGroup {
			g.maxGroup = v
		}
	}
	g.valid = true
	return g, nil
}

// NewGroupTableFromMap builds a GroupTable from a map keyed by
// unordered two-card starting hands, requiring every one of the 1,326
// starting hands to appear exactly once with a group id in
// [0, MaxGroups].
func NewGroupTableFromMap(m map[[2]Card]int) (*GroupTable, error) {
	if len(m) != NumStartingHands {
		return nil, ErrBadGroupTable
	}
	g := &GroupTable{}
	var seen [NumStartingHands]bool
	for k, v := range m {
		c0, c1 := k[0], k[1]
		if !c0.Valid() || !c1.Valid() || c0 == c1 {
			return nil, ErrBadGroupTable
		}
		if c0 > c1 {
			c0, c1 = c1, c0
		}
		if v < 0 || v > MaxGroups {
			return nil, ErrBadGroupTable
		}
		idx := startingHandIndex(c0, c1)
		if seen[idx] {
			return nil, ErrBadGroupTable
		}
		seen[idx] = true
		g.groups[idx] = v
		if v > g.maxGroup {
			g.maxGroup = v
		}
	}
	for _, ok := range seen {
		if !ok {
			return nil, ErrBadGroupTable
		}
	}
	g.valid = true
	return g, nil
}

// Group returns the group id assigned to the unordered starting hand
// (c0, c1).
func (g *GroupTable) Group(c0, c1 Card) int {
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	return g.groups[startingHandIndex(c0, c1)]
}
