package toml_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tomlfold/toml"
)

func TestDocumentToTaggedJSON(t *testing.T) {
	doc, err := toml.Parse(`
name = "test"
count = 3
[[items]]
id = 1
`)
	if err != nil {
		t.Fatal(err)
	}

	got := toml.DocumentToTaggedJSON(doc)
	want := map[string]any{
		"name":  map[string]any{"type": "string", "value": "test"},
		"count": map[string]any{"type": "integer", "value": "3"},
		"items": []any{
			map[string]any{"id": map[string]any{"type": "integer", "value": "1"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DocumentToTaggedJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestTaggedJSONRoundTripsThroughFromTaggedJSON(t *testing.T) {
	doc, err := toml.Parse(`x = 1
y = 3.5
s = "hi"
b = true
arr = [1, 2, 3]
nan_val = nan
`)
	if err != nil {
		t.Fatal(err)
	}

	tagged := toml.DocumentToTaggedJSON(doc)
	v, err := toml.FromTaggedJSON(tagged)
	if err != nil {
		t.Fatal(err)
	}
	tbl, ok := v.Table()
	if !ok {
		t.Fatal("FromTaggedJSON did not produce a table")
	}

	x, ok := tbl.Get("x")
	if !ok {
		t.Fatal("x missing after round trip")
	}
	if diff := cmp.Diff(map[string]any{"type": "integer", "value": "1"}, toml.TaggedJSON(x)); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(tagged, toml.DocumentToTaggedJSON(*tbl), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
