package toml

import (
	"math"
	"strconv"
	"strings"
)

// recognizeBool consumes the literals `true` / `false`. Grounded on the
// teacher's lexTr/lexTru/lexTrue character-by-character state chain,
// collapsed to a single acceptString check since the cursor is
// non-destructive on failure.
func recognizeBool(c *cursor) (Value, error) {
	start := c.pos
	if c.acceptString("true") {
		return boolValue(true), nil
	}
	if c.acceptString("false") {
		return boolValue(false), nil
	}
	return Value{}, syntaxErr(start, "expected 'true' or 'false'")
}

// recognizeNumber recognizes an integer or float starting at the
// current position, which must be '+', '-', or a digit. Radix-prefixed
// integers (0x/0o/0b) and decimal leading-zero rejection are handled
// here; date/time forms are tried before this by the value dispatcher
// (see value_parse.go), per spec.md §4.1's load-bearing ordering note.
func recognizeNumber(c *cursor) (Value, error) {
	start := c.pos
	sign := ""
	if c.peek() == '+' || c.peek() == '-' {
		r := c.next()
		sign = string(r)
	}

	if sign == "" && c.peek() == '0' {
		if v, ok, err := tryRadixInteger(c, start); ok || err != nil {
			return v, err
		}
	}

	digits, hasLeadingZero := scanDigitsWithUnderscores(c)
	if digits == "" {
		return Value{}, syntaxErr(start, "expected a digit")
	}
	if hasLeadingZero && len(digits) > 1 {
		return Value{}, syntaxErr(start, "leading zeros are not allowed in decimal integers")
	}

	isFloat := false
	var fracDigits, expDigits, expSign string

	if c.peek() == '.' {
		isFloat = true
		c.next()
		d, _ := scanDigitsWithUnderscores(c)
		if d == "" {
			return Value{}, syntaxErr(c.pos, "expected a digit after the decimal point")
		}
		fracDigits = d
	}
	if r := c.peek(); r == 'e' || r == 'E' {
		isFloat = true
		c.next()
		if r := c.peek(); r == '+' || r == '-' {
			expSign = string(r)
			c.next()
		}
		d, _ := scanDigitsWithUnderscores(c)
		if d == "" {
			return Value{}, syntaxErr(c.pos, "expected a digit in the exponent")
		}
		expDigits = d
	}

	if !isFloat {
		text := sign + digits
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, overflowErr(start, "integer %q does not fit in a signed 64-bit value", text)
		}
		return intValue(i), nil
	}

	text := sign + digits
	if fracDigits != "" {
		text += "." + fracDigits
	}
	if expDigits != "" {
		text += "e" + expSign + expDigits
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, overflowErr(start, "float %q is out of range", text)
	}
	return floatValue(f), nil
}

// recognizeSpecialFloat consumes the bare words `inf`/`nan`. A leading
// sign, if any, has already been consumed by recognizeValue in
// value_parse.go, which passes negative=true for '-'.
func recognizeSpecialFloat(c *cursor, negative bool) (Value, error) {
	start := c.pos
	switch {
	case c.acceptString("inf"):
		if negative {
			return floatValue(math.Inf(-1)), nil
		}
		return floatValue(math.Inf(1)), nil
	case c.acceptString("nan"):
		return floatValue(math.NaN()), nil
	}
	return Value{}, syntaxErr(start, "expected 'inf' or 'nan'")
}

func tryRadixInteger(c *cursor, start int) (Value, bool, error) {
	m := c.mark()
	c.next() // consume the leading '0'
	r := c.peek()
	var base int
	switch r {
	case 'x':
		base = 16
	case 'o':
		base = 8
	case 'b':
		base = 2
	default:
		c.reset(m)
		return Value{}, false, nil
	}
	c.next() // consume x/o/b

	digitOK := func(r rune) bool {
		switch base {
		case 16:
			return isHexDigit(r)
		case 8:
			return r >= '0' && r <= '7'
		case 2:
			return r == '0' || r == '1'
		}
		return false
	}

	var b strings.Builder
	lastWasUnderscore := false
	any := false
	for {
		r := c.peek()
		if r == '_' {
			if !any || lastWasUnderscore {
				return Value{}, true, syntaxErr(c.pos, "underscore must be between digits")
			}
			c.next()
			lastWasUnderscore = true
			continue
		}
		if !digitOK(r) {
			break
		}
		c.next()
		b.WriteRune(r)
		any = true
		lastWasUnderscore = false
	}
	if !any {
		return Value{}, true, syntaxErr(c.pos, "expected at least one digit after radix prefix")
	}
	if lastWasUnderscore {
		return Value{}, true, syntaxErr(c.pos, "underscore must be between digits")
	}

	i, err := strconv.ParseUint(b.String(), base, 64)
	if err != nil {
		return Value{}, true, overflowErr(start, "integer %q does not fit in a signed 64-bit value", b.String())
	}
	if i > math.MaxInt64 {
		return Value{}, true, overflowErr(start, "integer %q does not fit in a signed 64-bit value", b.String())
	}
	return intValue(int64(i)), true, nil
}

// scanDigitsWithUnderscores consumes decimal digits, allowing
// underscores only between two digits, and reports whether the first
// digit seen was '0' followed by at least one more digit (the
// leading-zero decimal case spec.md §4.1 requires rejecting).
func scanDigitsWithUnderscores(c *cursor) (digits string, leadingZero bool) {
	var b strings.Builder
	any := false
	for {
		r := c.peek()
		if r == '_' {
			// An underscore is only consumed when it sits between two
			// digits; a trailing (or doubled) underscore is left
			// unconsumed, so the caller fails on the leftover '_' (for
			// a key-value pair, expectLineEnd reports it). The radix
			// path above reports such an underscore directly instead.
			if !any || !isDigit(c.peekAt(1)) {
				break
			}
			c.next()
			continue
		}
		if !isDigit(r) {
			break
		}
		c.next()
		b.WriteRune(r)
		any = true
	}
	s := b.String()
	return s, len(s) > 1 && s[0] == '0'
}
