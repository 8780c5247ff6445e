package toml

// recognizeValue is the single recursive entry point every value-bearing
// construct (array elements, inline-table members, key-value pairs)
// calls into. It is forward-declared in the sense that arrays and inline
// tables, which are themselves values, call back into it — the mutual
// recursion spec.md §9 calls out, resolved here simply by Go's ordinary
// top-down compilation (no lazy reference cell needed in a language with
// whole-file forward declarations).
//
// Dispatch follows the first-character table in spec.md §4.1.
func recognizeValue(c *cursor) (Value, error) {
	start := c.pos
	r := c.peek()
	switch {
	case r == '"' || r == '\'':
		return recognizeString(c)
	case r == 't' || r == 'f':
		return recognizeBool(c)
	case r == '[':
		return recognizeArray(c)
	case r == '{':
		return recognizeInlineTable(c)
	case r == 'i':
		return recognizeSpecialFloat(c, false)
	case r == 'n':
		return recognizeSpecialFloat(c, false) // bare "nan"
	case r == '+' || r == '-':
		neg := r == '-'
		m := c.mark()
		c.next()
		if c.peek() == 'i' || c.peek() == 'n' {
			v, err := recognizeSpecialFloat(c, neg)
			if err == nil {
				return v, nil
			}
		}
		c.reset(m)
		return recognizeNumber(c)
	case isDigit(r):
		if looksLikeDateTime(c) {
			return recognizeDateTime(c)
		}
		return recognizeNumber(c)
	}
	return Value{}, syntaxErr(start, "expected a TOML value but found %q", string(r))
}

// recognizeArray consumes `[` ... `]`. Whitespace, newlines and comments
// are permitted between tokens; a trailing comma before `]` is allowed;
// elements may be of mixed types (TOML 1.0.0 permits this, spec.md §4.2).
func recognizeArray(c *cursor) (Value, error) {
	start := c.pos
	c.next() // consume '['

	var elems []Value
	for {
		if err := skipArrayWhitespace(c); err != nil {
			return Value{}, err
		}
		if c.peek() == ']' {
			c.next()
			return arrayValue(elems), nil
		}
		if c.atEOF() {
			return Value{}, syntaxErr(start, "unterminated array")
		}

		v, err := recognizeValue(c)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)

		if err := skipArrayWhitespace(c); err != nil {
			return Value{}, err
		}
		switch c.peek() {
		case ',':
			c.next()
			continue
		case ']':
			c.next()
			return arrayValue(elems), nil
		default:
			return Value{}, syntaxErr(c.pos, "expected a comma (',') or array terminator (']'), but got %q", string(c.peek()))
		}
	}
}

// skipArrayWhitespace consumes whitespace, newlines and comments, which
// are all permitted freely between array tokens.
func skipArrayWhitespace(c *cursor) error {
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

// recognizeInlineTable consumes `{` ... `}`. Newlines and comments are
// forbidden inside; trailing commas are forbidden (spec.md §4.2, and
// DESIGN.md's resolution of Open Question 1).
func recognizeInlineTable(c *cursor) (Value, error) {
	start := c.pos
	c.next() // consume '{'
	t := newTable(true)
	implicit := map[*Table]bool{}

	skipInlineSpace(c)
	if c.peek() == '}' {
		c.next()
		return tableValue(t), nil
	}

	for {
		if c.atEOF() || isNewline(c.peek()) {
			return Value{}, syntaxErr(start, "unterminated inline table")
		}
		path, err := parseDottedKey(c)
		if err != nil {
			return Value{}, err
		}
		skipInlineSpace(c)
		if !c.accept('=') {
			return Value{}, syntaxErr(c.pos, "expected '=' after key in inline table")
		}
		skipInlineSpace(c)
		v, err := recognizeValue(c)
		if err != nil {
			return Value{}, err
		}
		if err := assignDotted(t, implicit, path, v); err != nil {
			return Value{}, err
		}

		skipInlineSpace(c)
		switch c.peek() {
		case ',':
			c.next()
			skipInlineSpace(c)
			if c.peek() == '}' {
				return Value{}, syntaxErr(c.pos, "trailing comma is not allowed in an inline table")
			}
			continue
		case '}':
			c.next()
			return tableValue(t), nil
		default:
			return Value{}, syntaxErr(c.pos, "expected ',' or '}' in inline table")
		}
	}
}

// skipInlineSpace consumes spaces/tabs only: newlines are not permitted
// inside an inline table.
func skipInlineSpace(c *cursor) {
	for isWhitespace(c.peek()) {
		c.next()
	}
}
