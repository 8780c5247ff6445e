// Package toml parses TOML 1.0.0 documents into an in-memory document
// model and provides typed, dotted-path accessors over that model.
//
// Serialization back to TOML text, schema validation and streaming input
// are out of scope; see ParseError for how parse failures are reported.
package toml

import "fmt"

// Kind identifies the dynamic type carried by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBool
	KindOffsetDateTime
	KindLocalDateTime
	KindLocalDate
	KindLocalTime
	KindArray
	KindInlineTable
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindOffsetDateTime:
		return "offset-datetime"
	case KindLocalDateTime:
		return "local-datetime"
	case KindLocalDate:
		return "local-date"
	case KindLocalTime:
		return "local-time"
	case KindArray:
		return "array"
	case KindInlineTable:
		return "inline-table"
	case KindTable:
		return "table"
	}
	return "invalid"
}

// DateTime holds the calendar fields shared by all four TOML date/time
// variants. Which fields are meaningful depends on the owning Value's
// Kind: LocalDate ignores Hour/Min/Sec/Nsec, LocalTime ignores
// Year/Month/Day, and OffsetMinutes is only meaningful (and only ever
// set) on KindOffsetDateTime.
//
// OffsetMinutes is the signed number of minutes east of UTC; a "Z"
// offset is stored as 0, identically to a literal "+00:00". There is no
// way to distinguish the two once parsed, which matches spec.md §3 (the
// offset is "present" or "absent", not further distinguished).
type DateTime struct {
	Year, Month, Day     int
	Hour, Min, Sec, Nsec int
	OffsetMinutes        int
	HasOffset            bool
}

// Value is a TOML value: exactly one of the fields below is meaningful,
// selected by Kind. Values are immutable once constructed; Table and
// InlineTable are permanently distinct variants (see assembler.go) and
// that distinction is preserved for the lifetime of the Value.
type Value struct {
	Kind Kind

	str   string
	i64   int64
	f64   float64
	b     bool
	dt    DateTime
	arr   []Value
	table *Table
}

// Table is an ordered string-keyed map of Value. Keys are unique within
// a Table (enforced by the assembler); Inline records whether this Table
// was created by inline-table syntax `{...}`, in which case it can never
// be extended by a later header or dotted assignment.
type Table struct {
	Inline bool

	m    map[string]Value
	keys []string
}

func newTable(inline bool) *Table {
	return &Table{Inline: inline, m: map[string]Value{}}
}

// Len returns the number of direct keys in t.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns the direct keys of t in declaration order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Get returns the value bound to key and whether it was present.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.m[key]
	return v, ok
}

// set binds key to v. The caller (the assembler) is responsible for
// enforcing duplicate-key and extension rules before calling set.
func (t *Table) set(key string, v Value) {
	if _, exists := t.m[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.m[key] = v
}

// Document is the root of a parsed TOML document: a Table containing
// every root-level key.
type Document = Table

// String returns a best-effort textual rendering of the Value's payload,
// useful for diagnostics; it is not a TOML serialization.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindInteger:
		return fmt.Sprintf("%d", v.i64)
	case KindFloat:
		return fmt.Sprintf("%v", v.f64)
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindOffsetDateTime, KindLocalDateTime, KindLocalDate, KindLocalTime:
		return v.dt.String()
	case KindArray:
		return fmt.Sprintf("array[%d]", len(v.arr))
	case KindInlineTable, KindTable:
		return fmt.Sprintf("table[%d]", v.table.Len())
	}
	return "<invalid>"
}

// AsString reports v's string payload, present only when v.Kind is
// KindString. These per-Value typed getters mirror the path-based
// accessors in accessor.go, for code (and tests) that already holds a
// Value, e.g. after indexing an Array returned by GetValue.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsInt reports v's integer payload, present only when v.Kind is KindInteger.
func (v Value) AsInt() (int64, bool) {
	if v.Kind != KindInteger {
		return 0, false
	}
	return v.i64, true
}

// AsFloat reports v's float payload, present only when v.Kind is KindFloat.
func (v Value) AsFloat() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.f64, true
}

// AsBool reports v's boolean payload, present only when v.Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsDateTime reports v's calendar fields, present for any of the four
// date/time kinds.
func (v Value) AsDateTime() (DateTime, bool) {
	switch v.Kind {
	case KindOffsetDateTime, KindLocalDateTime, KindLocalDate, KindLocalTime:
		return v.dt, true
	}
	return DateTime{}, false
}

// Array reports v's elements, present only when v.Kind is KindArray.
func (v Value) Array() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// Table reports v's underlying Table, present when v.Kind is KindTable
// or KindInlineTable; use Table.Inline to tell them apart.
func (v Value) Table() (*Table, bool) {
	if v.Kind != KindTable && v.Kind != KindInlineTable {
		return nil, false
	}
	return v.table, true
}

func (d DateTime) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	s += fmt.Sprintf("T%02d:%02d:%02d", d.Hour, d.Min, d.Sec)
	if d.Nsec != 0 {
		s += fmt.Sprintf(".%09d", d.Nsec)
	}
	if d.HasOffset {
		if d.OffsetMinutes == 0 {
			s += "Z"
		} else {
			sign := "+"
			m := d.OffsetMinutes
			if m < 0 {
				sign = "-"
				m = -m
			}
			s += fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
		}
	}
	return s
}

func stringValue(s string) Value  { return Value{Kind: KindString, str: s} }
func intValue(i int64) Value      { return Value{Kind: KindInteger, i64: i} }
func floatValue(f float64) Value  { return Value{Kind: KindFloat, f64: f} }
func boolValue(b bool) Value      { return Value{Kind: KindBool, b: b} }
func arrayValue(a []Value) Value  { return Value{Kind: KindArray, arr: a} }
func tableValue(t *Table) Value {
	k := KindTable
	if t.Inline {
		k = KindInlineTable
	}
	return Value{Kind: k, table: t}
}
func dateTimeValue(k Kind, dt DateTime) Value { return Value{Kind: k, dt: dt} }
