// Command jsontoml reads the type-tagged JSON form on stdin (as produced
// by tomljson) and writes a human-readable dump of the resulting
// TOML-shaped value tree. It is the encoding direction's counterpart to
// tomljson, adapted from the teacher's cmd/toml-test-encoder; unlike the
// teacher it does not re-render TOML source text, since serialization is
// out of scope (see DESIGN.md).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tomlfold/toml"
)

func init() {
	log.SetFlags(0)
}

func main() {
	if len(os.Args) > 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s < json-file\n", os.Args[0])
		os.Exit(1)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("error reading stdin: %s", err)
	}

	var tagged any
	if err := json.Unmarshal(input, &tagged); err != nil {
		log.Fatalf("error decoding JSON: %s", err)
	}

	v, err := toml.FromTaggedJSON(tagged)
	if err != nil {
		log.Fatalf("error translating tagged JSON: %s", err)
	}

	dump(v, 0)
}

func dump(v toml.Value, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	if tbl, ok := v.Table(); ok {
		for _, key := range tbl.Keys() {
			child, _ := tbl.Get(key)
			if _, isTable := child.Table(); isTable {
				fmt.Printf("%s%s:\n", indent, key)
				dump(child, depth+1)
				continue
			}
			if _, isArray := child.Array(); isArray {
				fmt.Printf("%s%s:\n", indent, key)
				dump(child, depth+1)
				continue
			}
			fmt.Printf("%s%s = %s\n", indent, key, child)
		}
		return
	}

	if elems, ok := v.Array(); ok {
		for i, e := range elems {
			fmt.Printf("%s[%d]:\n", indent, i)
			dump(e, depth+1)
		}
		return
	}

	fmt.Printf("%s%s\n", indent, v)
}
