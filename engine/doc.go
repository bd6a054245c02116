// Package engine implements the tutorial session engine: the stateful driver
// for one tutorial's step sequence and its embedded mini-game.
//
// The Engine serves one tutorial at a time. It owns the transient session
// state (current step, skip marker, game score) and exposes the current step
// and running tutorial as observable state streams consumed by the
// coordinator's derived state.
//
// # Responsibilities (abridged)
//   - Stepwise advancement with a progression-vs-skip distinction
//   - Mini-game mechanics (start, target hits, scoring)
//   - Publishing step/tutorial state to observers
//
// Lifecycle bookkeeping (scenario swapping, success records, tutorial mode)
// lives in the tutorial package; this engine knows nothing about scenarios.
package engine
