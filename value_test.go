package toml

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindString, "string"},
		{KindInteger, "integer"},
		{KindFloat, "float"},
		{KindBool, "bool"},
		{KindOffsetDateTime, "offset-datetime"},
		{KindLocalDateTime, "local-datetime"},
		{KindLocalDate, "local-date"},
		{KindLocalTime, "local-time"},
		{KindArray, "array"},
		{KindInlineTable, "inline-table"},
		{KindTable, "table"},
		{KindInvalid, "invalid"},
		{Kind(99), "invalid"},
	}
	for _, tt := range tests {
		if have := tt.k.String(); have != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, have, tt.want)
		}
	}
}

func TestValueAccessorsRejectWrongKind(t *testing.T) {
	v := intValue(5)

	if _, ok := v.AsString(); ok {
		t.Error("AsString() ok on an integer Value")
	}
	if _, ok := v.AsFloat(); ok {
		t.Error("AsFloat() ok on an integer Value")
	}
	if _, ok := v.AsBool(); ok {
		t.Error("AsBool() ok on an integer Value")
	}
	if _, ok := v.AsDateTime(); ok {
		t.Error("AsDateTime() ok on an integer Value")
	}
	if _, ok := v.Array(); ok {
		t.Error("Array() ok on an integer Value")
	}
	if _, ok := v.Table(); ok {
		t.Error("Table() ok on an integer Value")
	}
	if got, ok := v.AsInt(); !ok || got != 5 {
		t.Errorf("AsInt() = %d, %v; want 5, true", got, ok)
	}
}

func TestTableSetPreservesDeclarationOrder(t *testing.T) {
	tbl := newTable(false)
	tbl.set("z", intValue(1))
	tbl.set("a", intValue(2))
	tbl.set("m", intValue(3))

	want := []string{"z", "a", "m"}
	got := tbl.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTableSetOverwriteKeepsSinglePosition(t *testing.T) {
	tbl := newTable(false)
	tbl.set("a", intValue(1))
	tbl.set("b", intValue(2))
	tbl.set("a", intValue(99))

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	v, ok := tbl.Get("a")
	if !ok {
		t.Fatal("Get(a) missing")
	}
	if got, _ := v.AsInt(); got != 99 {
		t.Errorf("a = %d, want 99", got)
	}
}

func TestDateTimeString(t *testing.T) {
	tests := []struct {
		dt   DateTime
		want string
	}{
		{DateTime{Year: 1979, Month: 5, Day: 27}, "1979-05-27T00:00:00"},
		{
			DateTime{Year: 1979, Month: 5, Day: 27, Hour: 7, Min: 32, Sec: 0, HasOffset: true},
			"1979-05-27T07:32:00Z",
		},
		{
			DateTime{Year: 1979, Month: 5, Day: 27, Hour: 0, Min: 32, Sec: 0, Nsec: 999999000, HasOffset: true, OffsetMinutes: -420},
			"1979-05-27T00:32:00.999999000-07:00",
		},
	}
	for _, tt := range tests {
		if have := tt.dt.String(); have != tt.want {
			t.Errorf("DateTime.String() = %q, want %q", have, tt.want)
		}
	}
}
