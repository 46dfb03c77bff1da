// Package naming turns schema names into target-language identifiers.
//
// Reserved words are data: each target carries its own Keywords set, and
// escaping is a pure function of the name and that set. Casing follows the
// target's member convention (exported upper camel case for Go, lower camel
// case for Swift).
package naming
