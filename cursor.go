package toml

import "unicode/utf8"

// cursor is a position over input text with one-rune lookahead and
// backup, the non-destructive primitive every recognizer in this
// package is built from. It owns the input for the duration of a Parse
// call and is never exposed outside the package (spec.md §5).
//
// Unlike the teacher's channel-fed lexer, a cursor never emits; a failed
// recognizer simply leaves the cursor where it found it (restored via
// mark/reset) so alternation can try the next production.
type cursor struct {
	input string
	pos   int // byte offset
	width int // width in bytes of the last rune returned by next
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

const eof rune = -1

// mark returns a save point for reset.
func (c *cursor) mark() int { return c.pos }

// reset rewinds the cursor to a mark produced by mark().
func (c *cursor) reset(m int) { c.pos = m; c.width = 0 }

// next consumes and returns the next rune, or eof at end of input.
func (c *cursor) next() rune {
	if c.pos >= len(c.input) {
		c.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += w
	c.width = w
	return r
}

// backup steps back over the last rune returned by next. It may only be
// called once per call to next.
func (c *cursor) backup() {
	c.pos -= c.width
	c.width = 0
}

// peek returns the next rune without consuming it.
func (c *cursor) peek() rune {
	r := c.next()
	if r != eof {
		c.backup()
	}
	return r
}

// peekAt looks ahead n runes without consuming any input.
func (c *cursor) peekAt(n int) rune {
	m := c.mark()
	defer c.reset(m)
	var r rune = eof
	for i := 0; i <= n; i++ {
		r = c.next()
		if r == eof {
			return eof
		}
	}
	return r
}

// accept consumes the next rune if it equals valid.
func (c *cursor) accept(valid rune) bool {
	if c.next() == valid {
		return true
	}
	c.backup()
	return false
}

// acceptString consumes s in full if the input matches it exactly at the
// current position, else leaves the cursor untouched.
func (c *cursor) acceptString(s string) bool {
	m := c.mark()
	for _, want := range s {
		if c.next() != want {
			c.reset(m)
			return false
		}
	}
	return true
}

func (c *cursor) atEOF() bool { return c.pos >= len(c.input) }

func isWhitespace(r rune) bool { return r == ' ' || r == '\t' }

func isNewline(r rune) bool { return r == '\n' || r == '\r' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isBareKeyChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
		isDigit(r) || r == '_' || r == '-'
}

// isControl reports whether r is forbidden inside TOML strings: any
// control character other than tab. This is a rune-level test (not a
// byte-range test), so multi-byte Unicode scalars outside ASCII are
// always accepted, per spec.md §9 Open Question 4.
func isControl(r rune) bool {
	if r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7f
}
