package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a field default normalised to the field's storage kind.
type Value struct {
	Kind ScalarKind
	// Literal is the canonical numeric or boolean spelling of the value.
	Literal string
	// Enumerator is set when the value names an enumerator of the field's enum.
	Enumerator *EnumVal
}

// DefaultValue returns the normalised default of a scalar-stored field
// (scalar, enum or union discriminator). Fields without a declared default
// default to zero. Offset-typed and struct fields have no scalar default;
// the boolean result reports whether a value was produced.
func DefaultValue(f *FieldDef) (Value, bool, error) {
	kind, ok := Underlying(f.Type)
	if !ok {
		if f.Default != "" {
			return Value{}, false, fmt.Errorf("field %q of type %s cannot have a default", f.Name, f.Type)
		}

		return Value{}, false, nil
	}

	var enum *EnumDef

	switch t := f.Type.(type) {
	case EnumRef:
		enum = t.Def
	case UnionType:
		enum = t.Def
	}

	lit := strings.TrimSpace(f.Default)
	if lit == "" {
		lit = "0"
		if kind == ScalarBool {
			lit = "false"
		}
	}

	if enum != nil {
		if ev, found := enum.Lookup(lit); found {
			return Value{Kind: kind, Literal: strconv.FormatInt(ev.Value, 10), Enumerator: &ev}, true, nil
		}
	}

	canonical, err := normaliseLiteral(kind, lit)
	if err != nil {
		return Value{}, false, fmt.Errorf("field %q: %w", f.Name, err)
	}

	v := Value{Kind: kind, Literal: canonical}

	if enum != nil {
		n, _ := strconv.ParseInt(canonical, 10, 64)
		if ev, found := enum.ByValue(n); found {
			v.Enumerator = &ev
		}
	}

	return v, true, nil
}

func normaliseLiteral(kind ScalarKind, lit string) (string, error) {
	switch {
	case kind == ScalarBool:
		switch lit {
		case "true", "1":
			return "true", nil
		case "false", "0":
			return "false", nil
		}

		return "", fmt.Errorf("invalid bool default %q", lit)

	case kind.IsSigned():
		n, err := strconv.ParseInt(lit, 0, kind.Bits())
		if err != nil {
			return "", fmt.Errorf("invalid %s default %q: %w", kind.SchemaName(), lit, err)
		}

		return strconv.FormatInt(n, 10), nil

	case kind.IsInteger():
		n, err := strconv.ParseUint(lit, 0, kind.Bits())
		if err != nil {
			return "", fmt.Errorf("invalid %s default %q: %w", kind.SchemaName(), lit, err)
		}

		return strconv.FormatUint(n, 10), nil

	case kind.IsFloat():
		f, err := strconv.ParseFloat(lit, kind.Bits())
		if err != nil {
			return "", fmt.Errorf("invalid %s default %q: %w", kind.SchemaName(), lit, err)
		}

		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("non-finite %s default %q is not supported", kind.SchemaName(), lit)
		}

		s := strconv.FormatFloat(f, 'g', -1, kind.Bits())
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}

		return s, nil
	}

	return "", fmt.Errorf("invalid scalar kind %s", kind)
}
