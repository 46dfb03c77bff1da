package fbrt

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
)

// FileIdentifierLength is the exact length of a buffer file identifier.
const FileIdentifierLength = 4

// ErrFileIdentifier is returned for identifiers of the wrong length.
var ErrFileIdentifier = errors.New("invalid file identifier")

// FinishWithFileIdentifier finishes the buffer with root as its root table,
// tagging it with ident.
func FinishWithFileIdentifier(b *flatbuffers.Builder, root flatbuffers.UOffsetT, ident string) error {
	if len(ident) != FileIdentifierLength {
		return fmt.Errorf("%w: %q must be %d bytes", ErrFileIdentifier, ident, FileIdentifierLength)
	}

	b.FinishWithFileIdentifier(root, []byte(ident))

	return nil
}

// BufferHasIdentifier reports whether a finished buffer carries ident.
func BufferHasIdentifier(buf []byte, ident string) bool {
	start := flatbuffers.SizeUOffsetT
	if len(ident) != FileIdentifierLength || len(buf) < start+FileIdentifierLength {
		return false
	}

	return string(buf[start:start+FileIdentifierLength]) == ident
}
