package toml

import (
	"math"
	"testing"
)

func parseNumberValue(t *testing.T, input string) Value {
	t.Helper()
	c := newCursor(input)
	v, err := recognizeNumber(c)
	if err != nil {
		t.Fatalf("recognizeNumber(%q): %v", input, err)
	}
	if !c.atEOF() {
		t.Fatalf("recognizeNumber(%q) left %q unconsumed", input, input[c.pos:])
	}
	return v
}

func TestRecognizeNumberIntegers(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"-17", -17},
		{"+99", 99},
		{"1_000_000", 1000000},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	}
	for _, tt := range tests {
		v := parseNumberValue(t, tt.in)
		if v.Kind != KindInteger {
			t.Fatalf("recognizeNumber(%q).Kind = %v, want KindInteger", tt.in, v.Kind)
		}
		if got, _ := v.AsInt(); got != tt.want {
			t.Errorf("recognizeNumber(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRecognizeNumberRadixIntegers(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0xDEAD_BEEF", 0xDEADBEEF},
		{"0o755", 0o755},
		{"0b11111111", 0b11111111},
		{"0x0", 0},
	}
	for _, tt := range tests {
		v := parseNumberValue(t, tt.in)
		if got, _ := v.AsInt(); got != tt.want {
			t.Errorf("recognizeNumber(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRecognizeNumberRejectsLeadingZero(t *testing.T) {
	_, err := recognizeNumber(newCursor("0123"))
	if err == nil {
		t.Fatal("expected an error for a leading-zero decimal integer")
	}
}

func TestRecognizeNumberOverflow(t *testing.T) {
	_, err := recognizeNumber(newCursor("9223372036854775808"))
	if err == nil {
		t.Fatal("expected an OverflowError")
	}
	if pe, ok := err.(ParseError); !ok || pe.Offset < 0 {
		t.Fatalf("expected an anchored ParseError, got %#v", err)
	}
}

func TestRecognizeNumberRadixOverflow(t *testing.T) {
	_, err := recognizeNumber(newCursor("0xFFFFFFFFFFFFFFFF"))
	if err == nil {
		t.Fatal("expected an OverflowError for a hex literal above math.MaxInt64")
	}
	if pe, ok := err.(ParseError); !ok || pe.Offset < 0 {
		t.Fatalf("expected an anchored ParseError, got %#v", err)
	}
}

func TestRecognizeNumberFloats(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3.25", 3.25},
		{"-0.5", -0.5},
		{"6.022e23", 6.022e23},
		{"1e10", 1e10},
		{"1_000.5", 1000.5},
	}
	for _, tt := range tests {
		v := parseNumberValue(t, tt.in)
		if v.Kind != KindFloat {
			t.Fatalf("recognizeNumber(%q).Kind = %v, want KindFloat", tt.in, v.Kind)
		}
		if got, _ := v.AsFloat(); got != tt.want {
			t.Errorf("recognizeNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRecognizeSpecialFloat(t *testing.T) {
	v, err := recognizeSpecialFloat(newCursor("nan"), false)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := v.AsFloat(); !math.IsNaN(got) {
		t.Errorf("nan parsed as %v", got)
	}

	v, err = recognizeSpecialFloat(newCursor("inf"), true)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := v.AsFloat(); got != math.Inf(-1) {
		t.Errorf("-inf parsed as %v", got)
	}
}

func TestScanDigitsWithUnderscoresRejectsLeadingUnderscore(t *testing.T) {
	c := newCursor("_1")
	digits, _ := scanDigitsWithUnderscores(c)
	if digits != "" {
		t.Errorf("expected no digits consumed, got %q", digits)
	}
}

func TestScanDigitsWithUnderscoresStopsAtTrailingUnderscore(t *testing.T) {
	c := newCursor("1_")
	digits, _ := scanDigitsWithUnderscores(c)
	if digits != "1" {
		t.Errorf("digits = %q, want %q", digits, "1")
	}
	if c.atEOF() {
		t.Fatal("expected the trailing underscore to be left unconsumed")
	}
}

func TestScanDigitsWithUnderscoresStopsAtDoubleUnderscore(t *testing.T) {
	// recognizeNumber itself just stops at the run of digits it
	// understands; a double underscore is caught one layer up, when the
	// structural parser finds it isn't followed by end-of-line (see
	// TestParseKeyValuePairRejectsMalformedUnderscore in structural_test.go).
	c := newCursor("1__000")
	_, err := recognizeNumber(c)
	if err != nil {
		t.Fatalf("recognizeNumber: unexpected error %v", err)
	}
	if c.atEOF() {
		t.Fatal("expected recognizeNumber to stop before the second underscore")
	}
}
