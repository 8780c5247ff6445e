package toml

import (
	"fmt"
	"math"
	"strconv"
)

// TaggedJSON converts v into the type-tagged JSON shape used by the
// toml-test suite: every leaf becomes {"type": "...", "value": "..."}
// and every table/array becomes a plain map/slice. This is the
// interchange format cmd/tomljson emits and cmd/jsontoml consumes,
// grounded on the teacher's cmd/toml-test-decoder addJSONTags.
func TaggedJSON(v Value) any {
	switch v.Kind {
	case KindString:
		return tag("string", v.str)
	case KindInteger:
		return tag("integer", fmt.Sprintf("%d", v.i64))
	case KindFloat:
		switch {
		case math.IsNaN(v.f64):
			return tag("float", "nan")
		case math.IsInf(v.f64, 1):
			return tag("float", "inf")
		case math.IsInf(v.f64, -1):
			return tag("float", "-inf")
		}
		return tag("float", fmt.Sprintf("%v", v.f64))
	case KindBool:
		return tag("bool", fmt.Sprintf("%v", v.b))
	case KindOffsetDateTime:
		return tag("datetime", v.dt.String())
	case KindLocalDateTime:
		return tag("datetime-local", v.dt.String())
	case KindLocalDate:
		// DateTime.String() always renders "YYYY-MM-DDTHH:MM:SS..."; a
		// local date keeps only the date part and a local time only the
		// part after the 'T', so FromTaggedJSON can re-parse them.
		return tag("date-local", v.dt.String()[:10])
	case KindLocalTime:
		return tag("time-local", v.dt.String()[11:])
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = TaggedJSON(e)
		}
		return out
	case KindTable, KindInlineTable:
		return tableToTaggedJSON(v.table)
	}
	return nil
}

// DocumentToTaggedJSON converts a whole Document, which is always a
// table at the root.
func DocumentToTaggedJSON(doc Document) any {
	return tableToTaggedJSON(&doc)
}

func tableToTaggedJSON(t *Table) any {
	out := make(map[string]any, t.Len())
	for _, k := range t.keys {
		v := t.m[k]
		out[k] = TaggedJSON(v)
	}
	return out
}

func tag(typeName string, value string) map[string]any {
	return map[string]any{"type": typeName, "value": value}
}

// FromTaggedJSON is the inverse of TaggedJSON/DocumentToTaggedJSON: it
// reconstructs a Value tree from the type-tagged JSON shape, the
// direction cmd/jsontoml needs. Grounded on the teacher's
// cmd/toml-test-encoder untag/translate pair.
func FromTaggedJSON(j any) (Value, error) {
	switch x := j.(type) {
	case map[string]any:
		if typeName, value, ok := asTaggedLeaf(x); ok {
			return untag(typeName, value)
		}
		t := newTable(true)
		for k, v := range x {
			sub, err := FromTaggedJSON(v)
			if err != nil {
				return Value{}, err
			}
			t.set(k, sub)
		}
		return tableValue(t), nil
	case []any:
		elems := make([]Value, len(x))
		for i, v := range x {
			sub, err := FromTaggedJSON(v)
			if err != nil {
				return Value{}, err
			}
			elems[i] = sub
		}
		return arrayValue(elems), nil
	}
	return Value{}, fmt.Errorf("toml: unrecognized JSON shape %T", j)
}

func asTaggedLeaf(m map[string]any) (typeName string, value any, ok bool) {
	if len(m) != 2 {
		return "", nil, false
	}
	t, hasType := m["type"]
	v, hasValue := m["value"]
	if !hasType || !hasValue {
		return "", nil, false
	}
	s, ok := t.(string)
	return s, v, ok
}

func untag(typeName string, value any) (Value, error) {
	s, _ := value.(string)
	switch typeName {
	case "string":
		return stringValue(s), nil
	case "integer":
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("toml: invalid tagged integer %q: %w", s, err)
		}
		return intValue(i), nil
	case "float":
		switch s {
		case "nan":
			return floatValue(math.NaN()), nil
		case "inf", "+inf":
			return floatValue(math.Inf(1)), nil
		case "-inf":
			return floatValue(math.Inf(-1)), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("toml: invalid tagged float %q: %w", s, err)
		}
		return floatValue(f), nil
	case "bool":
		return boolValue(s == "true"), nil
	case "datetime", "datetime-local", "date-local", "time-local":
		return parseTaggedDateTime(typeName, s)
	}
	return Value{}, fmt.Errorf("toml: unrecognized tag type %q", typeName)
}

// parseTaggedDateTime re-parses a rendered DateTime.String() back into a
// Value, by handing it to the same recognizer Parse itself uses: wrapping
// it as a key-value pair is simpler than duplicating the scanning logic.
func parseTaggedDateTime(typeName, s string) (Value, error) {
	doc, err := Parse("v = " + s)
	if err != nil {
		return Value{}, fmt.Errorf("toml: invalid tagged %s %q: %w", typeName, s, err)
	}
	v, _ := doc.Get("v")
	return v, nil
}
