package holdem

// EvalRank is a hand-strength ordinal returned by the fast evaluator: a
// higher value always beats a lower one, and equal values are a tie.
// Ordinal 0 never occurs for a real 7-card hand.
type EvalRank uint16

// rankTable and flushTable are the two runtime lookup tables built once
// at package init from the table builder (tablebuilder.go). Kept as
// package-level slices, matching cactus.go's eager init()-built-table
// idiom, rather than behind a constructor: the tables have no
// configuration and every [Tables] value would be identical.
var (
	rankTable  []uint16
	flushTable []uint16
)

func init() {
	rankTable, flushTable = buildTables()
}

// Tables is a handle to the built evaluator tables. Its zero value is
// ready to use: all methods read the package-level tables built during
// init(). It exists so the evaluator and equity drivers read naturally
// as methods rather than free functions, and to leave room for a future
// variant (e.g. Omaha) to carry its own tables without changing call
// sites.
type Tables struct{}

// NewTables returns a ready-to-use evaluator handle.
func NewTables() *Tables {
	return &Tables{}
}
