// Package core provides the foundational domain types and interfaces used by
// the tutorial coordination module. It defines the core abstractions for:
//
//   - Tutorials, steps and the embedded mini-game payloads
//   - Scenario identities, creation specs and tutorial success records
//   - Pluggable stores for preferences and scenarios
//   - The detection engine and tutorial session engine boundaries
//
// The package intentionally keeps implementation concerns (persistence,
// session mechanics, the coordinator itself) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
