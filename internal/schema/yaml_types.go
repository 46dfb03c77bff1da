package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the YAML rendition of a resolved schema.
//
//	namespace: MyGame.Sample
//	root_type: Monster
//	file_identifier: MONS
//	enums:
//	  - {name: Color, type: byte, values: [Red, Green, {name: Blue, value: 2}]}
//	structs:
//	  - {name: Vec3, fields: [{name: x, type: float}]}
//	tables:
//	  - name: Monster
//	    fields:
//	      - {name: hp, type: short, default: 100}
//	      - {name: name, type: string, required: true}
type Document struct {
	Namespace      string          `yaml:"namespace,omitempty"`
	RootType       string          `yaml:"root_type,omitempty"`
	FileIdentifier string          `yaml:"file_identifier,omitempty"`
	FileName       string          `yaml:"file_name,omitempty"`
	Options        DocumentOptions `yaml:"options,omitempty"`
	Enums          []EnumDoc       `yaml:"enums,omitempty"`
	Unions         []UnionDoc      `yaml:"unions,omitempty"`
	Structs        []RecordDoc     `yaml:"structs,omitempty"`
	Tables         []RecordDoc     `yaml:"tables,omitempty"`
}

// DocumentOptions carries generation options stored alongside the schema.
type DocumentOptions struct {
	OneFile bool `yaml:"one_file,omitempty"`
}

// EnumDoc describes an enum. Type defaults to "int".
type EnumDoc struct {
	Name      string        `yaml:"name"`
	Namespace string        `yaml:"namespace,omitempty"`
	Type      string        `yaml:"type,omitempty"`
	Values    []EnumValDoc  `yaml:"values"`
	Doc       StringOrArray `yaml:"doc,omitempty"`
}

// EnumValDoc is one enumerator. A missing value continues from the previous
// enumerator, starting at zero.
type EnumValDoc struct {
	Name  string        `yaml:"name"`
	Value *int64        `yaml:"value,omitempty"`
	Doc   StringOrArray `yaml:"doc,omitempty"`
}

// UnionDoc describes a union over the named member tables.
type UnionDoc struct {
	Name      string        `yaml:"name"`
	Namespace string        `yaml:"namespace,omitempty"`
	Members   []string      `yaml:"members"`
	Doc       StringOrArray `yaml:"doc,omitempty"`
}

// RecordDoc describes a struct or table.
type RecordDoc struct {
	Name       string        `yaml:"name"`
	Namespace  string        `yaml:"namespace,omitempty"`
	Fields     []FieldDoc    `yaml:"fields"`
	SortBySize bool          `yaml:"sortbysize,omitempty"`
	HasKey     bool          `yaml:"has_key,omitempty"`
	Deprecated bool          `yaml:"deprecated,omitempty"`
	Doc        StringOrArray `yaml:"doc,omitempty"`
}

// FieldDoc describes one field.
type FieldDoc struct {
	Name       string        `yaml:"name"`
	Type       string        `yaml:"type"`
	Default    Literal       `yaml:"default,omitempty"`
	Deprecated bool          `yaml:"deprecated,omitempty"`
	Required   bool          `yaml:"required,omitempty"`
	Key        bool          `yaml:"key,omitempty"`
	Doc        StringOrArray `yaml:"doc,omitempty"`
}

// Literal is a default value kept in its source spelling, whatever YAML
// scalar type it was written as.
type Literal string

// UnmarshalYAML implements custom YAML unmarshaling for Literal.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: default must be a scalar, got %v", node.Line, node.Kind)
	}

	*l = Literal(node.Value)

	return nil
}

// StringOrArray holds doc lines written either as one string or a list.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// UnmarshalYAML accepts an enumerator written as a bare name or as a mapping.
func (v *EnumValDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v.Name = node.Value
		return nil

	case yaml.MappingNode:
		type plain EnumValDoc

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*v = EnumValDoc(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected enumerator name or mapping, got %v", node.Line, node.Kind)
	}
}
