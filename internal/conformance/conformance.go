// Package conformance runs a bundled set of valid/invalid TOML fixtures
// against the parser, in the spirit of the teacher's internal/toml-test
// runner. The external toml-test corpus that package drives is not
// vendored into the example pack and cannot be fetched (see DESIGN.md),
// so this package embeds a small fixture set of its own instead.
package conformance

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tomlfold/toml"
)

//go:embed testdata/valid/*.toml testdata/valid/*.json testdata/invalid/*.toml
var fixtures embed.FS

// Case is one fixture: a TOML input plus its expected outcome. For a
// valid case, Want holds the expected tagged-JSON document (decoded
// from the matching .json file); for an invalid case Want is nil and
// parsing must fail.
type Case struct {
	Name  string
	TOML  string
	Valid bool
	Want  any
}

// Cases loads every bundled fixture. It panics on malformed embedded
// data, since the fixture set is compiled into the binary and any
// mismatch is a bug in this package, not a runtime condition.
func Cases() []Case {
	var cases []Case
	cases = append(cases, loadValidCases()...)
	cases = append(cases, loadInvalidCases()...)
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases
}

func loadValidCases() []Case {
	entries, err := fs.Glob(fixtures, "testdata/valid/*.toml")
	if err != nil {
		panic(err)
	}
	cases := make([]Case, 0, len(entries))
	for _, tomlPath := range entries {
		name := strings.TrimSuffix(path.Base(tomlPath), ".toml")
		tomlData, err := fs.ReadFile(fixtures, tomlPath)
		if err != nil {
			panic(err)
		}
		jsonPath := "testdata/valid/" + name + ".json"
		jsonData, err := fs.ReadFile(fixtures, jsonPath)
		if err != nil {
			panic(fmt.Sprintf("conformance: %s has no matching fixture: %s", tomlPath, err))
		}
		var want any
		if err := json.Unmarshal(jsonData, &want); err != nil {
			panic(fmt.Sprintf("conformance: %s: invalid JSON fixture: %s", jsonPath, err))
		}
		cases = append(cases, Case{Name: "valid/" + name, TOML: string(tomlData), Valid: true, Want: want})
	}
	return cases
}

func loadInvalidCases() []Case {
	entries, err := fs.Glob(fixtures, "testdata/invalid/*.toml")
	if err != nil {
		panic(err)
	}
	cases := make([]Case, 0, len(entries))
	for _, tomlPath := range entries {
		name := strings.TrimSuffix(path.Base(tomlPath), ".toml")
		tomlData, err := fs.ReadFile(fixtures, tomlPath)
		if err != nil {
			panic(err)
		}
		cases = append(cases, Case{Name: "invalid/" + name, TOML: string(tomlData), Valid: false})
	}
	return cases
}

// Result is the outcome of running one Case against the parser.
type Result struct {
	Case    Case
	Passed  bool
	Failure string
}

// Run parses every case and compares the outcome to what it expects,
// using go-cmp (rather than reflect.DeepEqual) because the decoded
// tagged-JSON trees hold float64 NaN members for TOML's nan literal,
// and NaN != NaN under ==/DeepEqual.
func Run(cases []Case) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		results[i] = runOne(c)
	}
	return results
}

func runOne(c Case) Result {
	doc, err := toml.Parse(c.TOML)
	if !c.Valid {
		if err == nil {
			return Result{Case: c, Passed: false, Failure: "expected parsing to fail, but it succeeded"}
		}
		return Result{Case: c, Passed: true}
	}

	if err != nil {
		return Result{Case: c, Passed: false, Failure: fmt.Sprintf("expected parsing to succeed: %s", err)}
	}

	got := toml.DocumentToTaggedJSON(doc)
	if diff := cmp.Diff(c.Want, got, cmpopts.EquateNaNs()); diff != "" {
		return Result{Case: c, Passed: false, Failure: "tagged JSON mismatch (-want +got):\n" + diff}
	}
	return Result{Case: c, Passed: true}
}
