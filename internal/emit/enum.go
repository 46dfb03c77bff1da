package emit

import (
	"github.com/music-group/flatbuffers/internal/schema"
)

// EnumUnit emits an enum or union discriminator declaration. Values keep
// declaration order.
func EnumUnit(e *schema.EnumDef, opts Options) *Unit {
	b := newUnit(e.Name, e.Namespace, opts)

	s := Enum{
		Name:       opts.Naming.Type(e.Name),
		Underlying: b.mapType(schema.Scalar{Kind: e.Underlying}),
		Kind:       e.Underlying,
		IsUnion:    e.IsUnion,
		Doc:        e.Doc,
	}

	for _, v := range e.Values {
		s.Values = append(s.Values, EnumValue{Name: opts.Naming.Enumerator(v.Name), Value: v.Value, Doc: v.Doc})
	}

	b.add(s)

	return b.done()
}

// Distinct returns the first enumerator of every value, in declaration
// order. Later enumerators sharing a value are aliases.
func (e Enum) Distinct() []EnumValue {
	seen := make(map[int64]bool, len(e.Values))
	out := make([]EnumValue, 0, len(e.Values))

	for _, v := range e.Values {
		if seen[v.Value] {
			continue
		}

		seen[v.Value] = true
		out = append(out, v)
	}

	return out
}

// Aliases returns the enumerators left out of Distinct.
func (e Enum) Aliases() []EnumValue {
	seen := make(map[int64]bool, len(e.Values))

	var out []EnumValue

	for _, v := range e.Values {
		if seen[v.Value] {
			out = append(out, v)
			continue
		}

		seen[v.Value] = true
	}

	return out
}
