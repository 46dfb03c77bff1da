// Package match finds the closest known name for a misspelled identifier,
// used to turn unresolved schema references into "did you mean" hints.
package match
