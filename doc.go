// Package holdem implements a Texas Hold'em hand-evaluation kernel and
// a set of equity drivers built on top of it.
//
// The kernel is a pair of perfect-hash-style lookup tables, built once
// at package initialization from a closed-form base evaluator and a
// canonical enumeration of every reachable 7-card hand category
// (baseeval.go, seed.go, tablebuilder.go). [Tables.Evaluate7] and
// [BoardPartial] serve from those tables in constant time and without
// allocation. The equity drivers (equity.go) use the fast evaluator to
// answer head-to-head, multi-way, full-board-enumeration, Monte Carlo,
// and preflop-group-distribution questions.
package holdem
