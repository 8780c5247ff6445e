// Command tomlcheck validates TOML documents and, on request, prints the
// type of every key. Adapted from the teacher's cmd/tomlv, rewired onto
// cobra/pflag for the command-line layer (see DESIGN.md).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tomlfold/toml"
)

var (
	flagTypes bool
	flagJSON  bool
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "tomlcheck file [file ...]",
	Short: "Validate TOML documents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	bindFlags(rootCmd.Flags())
}

// bindFlags is written against *pflag.FlagSet directly, rather than
// going through cobra's wrapper methods only, so a future second
// command (tomlcheck currently has only one) can share the same flag
// definitions.
func bindFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&flagTypes, "types", false, "print the type of every key")
	fs.BoolVar(&flagJSON, "json", false, "print the parsed document as tagged JSON")
	fs.BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the 'file: valid' line for files that pass")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	var failed bool
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
			failed = true
			continue
		}

		doc, err := toml.Parse(string(data))
		if err != nil {
			if pe, ok := err.(toml.ParseError); ok {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, pe.ErrorWithPosition(string(data)))
			} else {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
			}
			failed = true
			continue
		}

		if !flagQuiet {
			fmt.Printf("%s: valid\n", path)
		}
		if flagTypes {
			printTypes(doc, nil)
		}
		if flagJSON {
			printJSON(doc)
		}
	}
	if failed {
		return fmt.Errorf("one or more files failed to validate")
	}
	return nil
}

func printTypes(doc toml.Document, prefix []string) {
	for _, key := range doc.Keys() {
		v, _ := doc.Get(key)
		path := make([]string, len(prefix)+1)
		copy(path, prefix)
		path[len(prefix)] = key
		fmt.Printf("%s\t%s\n", joinPath(path), v.Kind)
		if tbl, ok := v.Table(); ok {
			printTypes(*tbl, path)
		}
	}
}

func printJSON(doc toml.Document) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(toml.DocumentToTaggedJSON(doc))
}

func joinPath(path []string) string {
	out := path[0]
	for _, p := range path[1:] {
		out += "." + p
	}
	return out
}
