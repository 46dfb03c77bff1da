package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValue(t *testing.T) {
	color := &EnumDef{
		Name:       "Color",
		Underlying: ScalarInt8,
		Values:     []EnumVal{{Name: "Red", Value: 0}, {Name: "Green", Value: 1}, {Name: "Blue", Value: 2}},
	}

	tests := []struct {
		name       string
		field      FieldDef
		literal    string
		enumerator string
	}{
		{"short", FieldDef{Type: Scalar{Kind: ScalarInt16}, Default: "100"}, "100", ""},
		{"implicit zero", FieldDef{Type: Scalar{Kind: ScalarUint32}}, "0", ""},
		{"implicit false", FieldDef{Type: Scalar{Kind: ScalarBool}}, "false", ""},
		{"bool as number", FieldDef{Type: Scalar{Kind: ScalarBool}, Default: "1"}, "true", ""},
		{"hex", FieldDef{Type: Scalar{Kind: ScalarUint8}, Default: "0x10"}, "16", ""},
		{"negative", FieldDef{Type: Scalar{Kind: ScalarInt64}, Default: "-5"}, "-5", ""},
		{"float whole", FieldDef{Type: Scalar{Kind: ScalarFloat32}, Default: "3"}, "3.0", ""},
		{"float fraction", FieldDef{Type: Scalar{Kind: ScalarFloat64}, Default: "0.25"}, "0.25", ""},
		{"enum by name", FieldDef{Type: EnumRef{Def: color}, Default: "Blue"}, "2", "Blue"},
		{"enum by number", FieldDef{Type: EnumRef{Def: color}, Default: "1"}, "1", "Green"},
		{"enum zero", FieldDef{Type: EnumRef{Def: color}}, "0", "Red"},
		{"enum unnamed value", FieldDef{Type: EnumRef{Def: color}, Default: "7"}, "7", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok, err := DefaultValue(&tt.field)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.literal, v.Literal)

			if tt.enumerator == "" {
				assert.Nil(t, v.Enumerator)
			} else {
				require.NotNil(t, v.Enumerator)
				assert.Equal(t, tt.enumerator, v.Enumerator.Name)
			}
		})
	}
}

func TestDefaultValue_NonScalar(t *testing.T) {
	_, ok, err := DefaultValue(&FieldDef{Name: "name", Type: Str{}})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = DefaultValue(&FieldDef{Name: "name", Type: Str{}, Default: "x"})
	require.Error(t, err)
}

func TestDefaultValue_Invalid(t *testing.T) {
	for _, f := range []FieldDef{
		{Name: "a", Type: Scalar{Kind: ScalarInt8}, Default: "128"},
		{Name: "b", Type: Scalar{Kind: ScalarUint16}, Default: "-1"},
		{Name: "c", Type: Scalar{Kind: ScalarBool}, Default: "yes"},
		{Name: "d", Type: Scalar{Kind: ScalarFloat32}, Default: "nan"},
		{Name: "e", Type: Scalar{Kind: ScalarInt32}, Default: "Blue"},
	} {
		_, _, err := DefaultValue(&f)
		assert.Error(t, err, f.Name)
	}
}
