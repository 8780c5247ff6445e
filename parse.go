package toml

import "strings"

// Parse parses input as a TOML 1.0.0 document and returns the resulting
// Document, or a ParseError describing the first failure encountered.
// Parsing is a pure function: it performs no I/O, spawns no goroutines,
// and the returned Document holds no reference into input (spec.md §5).
// A leading UTF-8 BOM is tolerated and stripped before parsing.
func Parse(input string) (Document, error) {
	input = strings.TrimPrefix(input, string(rune(0xFEFF)))

	c := newCursor(input)
	rootPairs, sections, err := parseDocument(c)
	if err != nil {
		return Document{}, err
	}

	doc, err := assemble(rootPairs, sections)
	if err != nil {
		return Document{}, err
	}
	return *doc, nil
}

// MustParse parses input like Parse, but panics if parsing fails. It is
// the parse_or_fail convenience variant spec.md §6 allows.
func MustParse(input string) Document {
	doc, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return doc
}
