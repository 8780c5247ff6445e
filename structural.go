package toml

// kv is a single key-value assignment as produced by the structural
// parser: an already-split dotted key path paired with its value.
type kv struct {
	path []string
	val  Value
}

// sectionKind distinguishes a `[header]` from a `[[header]]`.
type sectionKind uint8

const (
	sectionTable sectionKind = iota
	sectionArrayOfTables
)

// section is one `[path]` or `[[path]]` header together with the pairs
// that follow it, up to the next header or EOF. This is the "section
// stream" intermediate form spec.md §4.2 describes, decoupling syntax
// recognition from the semantic folding assembler.go performs.
type section struct {
	kind  sectionKind
	path  []string
	pairs []kv
}

// parseDocument runs the structural parser over the whole input,
// producing root pairs (everything before the first header) and the
// ordered list of sections. On success the cursor is left at EOF.
func parseDocument(c *cursor) (rootPairs []kv, sections []section, err error) {
	if err := skipLineTrivia(c); err != nil {
		return nil, nil, err
	}
	for !c.atEOF() {
		if c.peek() == '[' {
			sec, err := parseSectionHeader(c)
			if err != nil {
				return nil, nil, err
			}
			if err := parseSectionPairs(c, &sec); err != nil {
				return nil, nil, err
			}
			sections = append(sections, sec)
			continue
		}

		pair, err := parseKeyValuePair(c)
		if err != nil {
			return nil, nil, err
		}
		if len(sections) > 0 {
			sections[len(sections)-1].pairs = append(sections[len(sections)-1].pairs, pair)
		} else {
			rootPairs = append(rootPairs, pair)
		}
		if err := skipLineTrivia(c); err != nil {
			return nil, nil, err
		}
	}
	return rootPairs, sections, nil
}

// parseSectionPairs consumes key-value pairs belonging to sec until the
// next header or EOF, appending them to sec.pairs.
func parseSectionPairs(c *cursor, sec *section) error {
	for {
		if err := skipLineTrivia(c); err != nil {
			return err
		}
		if c.atEOF() || c.peek() == '[' {
			return nil
		}
		pair, err := parseKeyValuePair(c)
		if err != nil {
			return err
		}
		sec.pairs = append(sec.pairs, pair)
	}
}

// parseSectionHeader parses `[dotted-key]` or `[[dotted-key]]`, assuming
// the cursor is positioned on the opening `[`, through to end of line.
func parseSectionHeader(c *cursor) (section, error) {
	c.next() // first '['
	arrayOfTables := c.accept('[')

	skipInlineSpace(c)
	path, err := parseDottedKey(c)
	if err != nil {
		return section{}, err
	}
	skipInlineSpace(c)

	if !c.accept(']') {
		return section{}, syntaxErr(c.pos, "expected ']' to close table header")
	}
	if arrayOfTables && !c.accept(']') {
		return section{}, syntaxErr(c.pos, "expected ']]' to close array-of-tables header")
	}

	if err := expectLineEnd(c); err != nil {
		return section{}, err
	}

	kind := sectionTable
	if arrayOfTables {
		kind = sectionArrayOfTables
	}
	return section{kind: kind, path: path}, nil
}

// parseKeyValuePair parses `dotted-key = value` through to end of line.
func parseKeyValuePair(c *cursor) (kv, error) {
	path, err := parseDottedKey(c)
	if err != nil {
		return kv{}, err
	}
	skipInlineSpace(c)
	if !c.accept('=') {
		return kv{}, syntaxErr(c.pos, "expected '=' after key")
	}
	skipInlineSpace(c)
	v, err := recognizeValue(c)
	if err != nil {
		return kv{}, err
	}
	skipInlineSpace(c)
	if err := expectLineEnd(c); err != nil {
		return kv{}, err
	}
	return kv{path: path, val: v}, nil
}

// parseDottedKey parses one or more simple keys separated by '.', with
// optional surrounding spaces/tabs around each separator.
func parseDottedKey(c *cursor) ([]string, error) {
	var path []string
	for {
		skipInlineSpace(c)
		k, err := parseSimpleKey(c)
		if err != nil {
			return nil, err
		}
		path = append(path, k)
		skipInlineSpace(c)
		if c.peek() != '.' {
			return path, nil
		}
		c.next()
	}
}

// parseSimpleKey parses a bare key or a quoted (basic/literal, non-
// multiline) key.
func parseSimpleKey(c *cursor) (string, error) {
	start := c.pos
	switch r := c.peek(); {
	case r == '"':
		c.next()
		v, err := recognizeBasicString(c)
		if err != nil {
			return "", err
		}
		return v.str, nil
	case r == '\'':
		c.next()
		v, err := recognizeLiteralString(c)
		if err != nil {
			return "", err
		}
		return v.str, nil
	case isBareKeyChar(r):
		var b []rune
		for isBareKeyChar(c.peek()) {
			b = append(b, c.next())
		}
		return string(b), nil
	}
	return "", syntaxErr(start, "expected a key")
}

// skipLineTrivia consumes whitespace, blank lines and whole comment
// lines until the next meaningful token or EOF.
func skipLineTrivia(c *cursor) error {
	for {
		r := c.peek()
		switch {
		case isWhitespace(r) || isNewline(r):
			c.next()
		case r == '#':
			for {
				r := c.peek()
				if r == eof || isNewline(r) {
					break
				}
				c.next()
			}
		default:
			return nil
		}
	}
}

// expectLineEnd consumes trailing spaces/tabs, an optional comment, and
// requires a newline or EOF to follow.
func expectLineEnd(c *cursor) error {
	skipInlineSpace(c)
	if c.peek() == '#' {
		for {
			r := c.peek()
			if r == eof || isNewline(r) {
				break
			}
			c.next()
		}
	}
	r := c.peek()
	if r == eof {
		return nil
	}
	if !isNewline(r) {
		return syntaxErr(c.pos, "expected end of line, found %q", string(r))
	}
	return nil
}
