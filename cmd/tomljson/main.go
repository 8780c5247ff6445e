// Command tomljson decodes a TOML document on stdin and writes its
// type-tagged JSON form to stdout, the same interchange format the
// teacher's cmd/toml-test-decoder produces (see tagged.go).
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
		fmt.Fprintf(os.Stderr, "Usage: %s < toml-file\n", os.Args[0])
		os.Exit(1)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("error reading stdin: %s", err)
	}

	doc, err := toml.Parse(string(input))
	if err != nil {
		if pe, ok := err.(toml.ParseError); ok {
			log.Fatalf("error decoding TOML: %s", pe.ErrorWithPosition(string(input)))
		}
		log.Fatalf("error decoding TOML: %s", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toml.DocumentToTaggedJSON(doc)); err != nil {
		log.Fatalf("error encoding JSON: %s", err)
	}
}
