// Package testutil provides internal test helpers: collaborator wrappers
// with failure injection used by coordinator tests. Not part of the public
// API surface.
package testutil
