package naming

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamel(t *testing.T) {
	tests := []struct {
		in         string
		upperFirst bool
		want       string
	}{
		{"hp", true, "Hp"},
		{"hp", false, "hp"},
		{"test_type", true, "TestType"},
		{"test_type", false, "testType"},
		{"inventoryCount", true, "InventoryCount"},
		{"Name", false, "name"},
		{"_hidden", true, "Hidden"},
		{"a__b", true, "AB"},
		{"", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Camel(tt.in, tt.upperFirst))
		})
	}
}

func TestCamel_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.Equal(t, "EquippedType", Camel("equipped_type", true))
		}()
	}

	wg.Wait()
}

func TestKeywords_Escape(t *testing.T) {
	assert.Equal(t, "type_", GoKeywords.Escape("type"))
	assert.Equal(t, "Type", GoKeywords.Escape("Type"))
	assert.Equal(t, "Type_", SwiftKeywords.Escape("Type"))
	assert.Equal(t, "hp", SwiftKeywords.Escape("hp"))
	assert.Equal(t, "x", NewKeywords().Escape("x"))
}

func TestConvention(t *testing.T) {
	assert.Equal(t, "Hp", Go.Member("hp"))
	assert.Equal(t, "hp", Swift.Member("hp"))
	assert.Equal(t, "type_", Go.Param("type"))
	assert.Equal(t, "default_", Swift.Member("default"))
	assert.Equal(t, "Type", Go.Member("type"))
	assert.Equal(t, "Monster", Go.Type("Monster"))
	assert.Equal(t, "Protocol_", Swift.Type("Protocol"))
	assert.Equal(t, "EquippedType", Go.Part("equipped_type"))
	assert.Equal(t, "none_", Swift.Enumerator("none"))
}

func TestConvention_GeneratedIdentifiers(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Go.Param("builder"), "builder_"},
		{Go.Param("flatbuffers"), "flatbuffers_"},
		{Go.Param("uint8"), "uint8_"},
		{Go.Param("builder_"), "builder_"},
		{Go.Member("init"), "Init_"},
		{Go.Member("table"), "Table_"},
		{Go.Member("builder"), "Builder"},
		{Swift.Param("builder"), "builder_"},
		{Swift.Member("builder"), "builder"},
		{Go.Part("init"), "Init"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}
}
