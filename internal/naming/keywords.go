package naming

// Keywords is a set of reserved identifiers of one target language.
type Keywords map[string]struct{}

// NewKeywords builds a keyword set.
func NewKeywords(words ...string) Keywords {
	k := make(Keywords, len(words))
	for _, w := range words {
		k[w] = struct{}{}
	}

	return k
}

// Contains reports whether name is reserved.
func (k Keywords) Contains(name string) bool {
	_, ok := k[name]
	return ok
}

// Escape appends an underscore to name if it collides with a keyword.
func (k Keywords) Escape(name string) string {
	if k.Contains(name) {
		return name + "_"
	}

	return name
}

// GoKeywords are the reserved words of Go.
var GoKeywords = NewKeywords(
	"break", "case", "chan", "const", "continue",
	"default", "defer", "else", "fallthrough", "for",
	"func", "go", "goto", "if", "import",
	"interface", "map", "package", "range", "return",
	"select", "struct", "switch", "type", "var",
)

// SwiftKeywords are the reserved words and contextual keywords of Swift.
var SwiftKeywords = NewKeywords(
	// declarations
	"associatedtype", "class", "deinit", "enum", "extension", "fileprivate",
	"func", "import", "init", "inout", "internal", "let", "open", "operator",
	"private", "protocol", "public", "static", "struct", "subscript",
	"typealias", "var",
	// statements
	"break", "case", "continue", "default", "defer", "do", "else",
	"fallthrough", "for", "guard", "if", "in", "repeat", "return", "switch",
	"where", "while",
	// expressions and types
	"as", "Any", "catch", "false", "is", "nil", "rethrows", "super", "self",
	"Self", "throw", "throws", "true", "try", "_",
	// contextual
	"associativity", "convenience", "dynamic", "didSet", "final", "get",
	"infix", "indirect", "lazy", "left", "mutating", "none", "nonmutating",
	"optional", "override", "postfix", "precedence", "prefix", "Protocol",
	"required", "right", "set", "Type", "unowned", "weak", "willSet",
)
