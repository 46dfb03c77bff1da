package fbrt

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
)

// RequiredFieldError reports a required field missing from a finished table.
type RequiredFieldError struct {
	Slot int
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("required field in vtable slot %d was not written", e.Slot)
}

// FieldVOffset returns the vtable offset of a slot.
func FieldVOffset(slot int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT((flatbuffers.VtableMetadataFields + slot) * flatbuffers.SizeVOffsetT)
}

// Present reports whether the table ending at offset table, as returned by
// EndObject, has a value in slot.
func Present(b *flatbuffers.Builder, table flatbuffers.UOffsetT, slot int) bool {
	t := flatbuffers.Table{Bytes: b.Bytes, Pos: flatbuffers.UOffsetT(len(b.Bytes)) - table}

	return t.Offset(FieldVOffset(slot)) != 0
}

// Required panics with a *RequiredFieldError when slot of the table ending
// at offset table was not written. Generated End functions call it once per
// required field.
func Required(b *flatbuffers.Builder, table flatbuffers.UOffsetT, slot int) {
	if !Present(b, table, slot) {
		panic(&RequiredFieldError{Slot: slot})
	}
}

// CheckRequired runs fn, usually a generated End function, and returns the
// *RequiredFieldError it panics with instead of panicking.
func CheckRequired(fn func() flatbuffers.UOffsetT) (off flatbuffers.UOffsetT, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		rerr, ok := r.(*RequiredFieldError)
		if !ok {
			panic(r)
		}

		err = rerr
	}()

	return fn(), nil
}
