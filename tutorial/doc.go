// Package tutorial implements the tutorial session coordinator: the
// component that orchestrates setup and teardown of tutorial mode, scenario
// swapping, tutorial selection, completion bookkeeping and the observable
// state consumed by the UI layer.
//
// The Coordinator mutates its own session state under a single lock,
// delegates step and game mechanics to the session engine, and delegates
// persistence and activation to the scenario store and detection engine.
// Blocking store calls are executed on a dedicated background worker and
// awaited, so state mutations are never concurrent with each other.
//
// # Responsibilities (abridged)
//   - Tutorial mode entry/exit with save/restore of the user's real scenario
//   - Tutorial start/stop with per-index scenario resolution
//   - Completion bookkeeping (success records, walked-vs-skipped distinction)
//   - Derived observable state (tutorial list, active tutorial/step/game)
//
// All public operations are logged no-ops on precondition failure; callers
// observe outcomes through the reactive state streams, not through errors.
package tutorial
