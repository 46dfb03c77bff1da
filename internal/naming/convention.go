package naming

// Convention is the identifier style of one target language.
type Convention struct {
	Keywords Keywords
	// Members are the method names generated code declares on every record
	// type itself.
	Members Keywords
	// Params are the parameter names generated functions declare besides the
	// field parameters, and the predeclared names their bodies call.
	Params Keywords
	// ExportedMembers upper-cases the first letter of accessor and builder
	// member names.
	ExportedMembers bool
}

// Go is the Go convention: exported members, Go keywords.
var Go = Convention{
	Keywords:        GoKeywords,
	Members:         NewKeywords("Init", "Table"),
	Params:          goParams,
	ExportedMembers: true,
}

// Swift is the Swift convention: lower camel case members, Swift keywords.
var Swift = Convention{
	Keywords: SwiftKeywords,
	Params:   NewKeywords("builder"),
}

// goParams holds the builder parameter, the packages builder bodies refer to
// and the scalar conversions they apply to enum arguments.
var goParams = NewKeywords(
	"builder", "flatbuffers", "fbrt",
	"bool", "byte", "int8", "uint8", "int16", "uint16",
	"int32", "uint32", "int64", "uint64", "float32", "float64",
)

// Type returns the identifier of a definition name. Definition names are
// kept as declared.
func (c Convention) Type(name string) string {
	return c.Keywords.Escape(name)
}

// Member returns the identifier of a field accessor.
func (c Convention) Member(name string) string {
	return escape(Camel(name, c.ExportedMembers), c.Keywords, c.Members)
}

// Part returns name camel-cased for use inside a composed identifier such
// as "MonsterAddHp". No escaping is needed there.
func (c Convention) Part(name string) string {
	return Camel(name, true)
}

// Param returns the identifier of a function parameter.
func (c Convention) Param(name string) string {
	return escape(Camel(name, false), c.Keywords, c.Params)
}

// Enumerator returns the identifier of an enum value. Enumerator names are
// kept as declared.
func (c Convention) Enumerator(name string) string {
	return c.Keywords.Escape(name)
}

// escape appends underscores to name until no set reserves it.
func escape(name string, sets ...Keywords) string {
	for {
		clash := false

		for _, set := range sets {
			if set.Contains(name) {
				clash = true
				break
			}
		}

		if !clash {
			return name
		}

		name += "_"
	}
}
