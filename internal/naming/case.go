package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Camel converts a snake_case schema name to camel case. Underscores are
// dropped and the letter after each is upper-cased; the first letter is
// upper-cased when upperFirst is set and lower-cased otherwise. Letters
// inside a word keep their case, so "inventoryCount" stays as written.
func Camel(name string, upperFirst bool) string {
	// Casers are stateful, one per call keeps Camel safe for concurrent use.
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder

	for i, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}

		if i == 0 || b.Len() == 0 {
			b.WriteString(firstLetter(part, upperFirst))
			continue
		}

		b.WriteString(title.String(part))
	}

	return b.String()
}

func firstLetter(word string, upper bool) string {
	head, tail := splitFirst(word)

	if upper {
		return cases.Upper(language.Und).String(head) + tail
	}

	return cases.Lower(language.Und).String(head) + tail
}

func splitFirst(word string) (string, string) {
	for i := range word {
		if i > 0 {
			return word[:i], word[i:]
		}
	}

	return word, ""
}
