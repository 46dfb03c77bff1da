// Package fbrt holds the runtime helpers generated Go bindings call in
// addition to github.com/google/flatbuffers/go: required-field checks,
// file identifier handling and the placeholder type of accessors that are
// not generated.
package fbrt
