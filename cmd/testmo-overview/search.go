package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testmotools/go-testmo/cursor"
	"github.com/testmotools/go-testmo/ir"
	"github.com/testmotools/go-testmo/query"
)

var searchKind string

func init() {
	searchCmd.Flags().StringVar(&searchKind, "kind", "",
		"restrict matches to one node type (Null, Number, String, Bool, Object, Array)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <file> <predicate>",
	Short: "Find the first node of a document matching a predicate.",
	Long: `Find the first node of a document matching a predicate.

The predicate is an expression over the current node, e.g.:

	testmo-overview search doc.json 'isTerminal && value == "y"'
	testmo-overview search doc.json 'isMapping && key("name") == "Alice"'

The search is depth-first in document order; the first hit's path and
value are printed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		pred, err := query.Compile(args[1])
		if err != nil {
			return err
		}
		match := pred.Match
		if searchKind != "" {
			var want ir.Type
			if err := want.UnmarshalText([]byte(searchKind)); err != nil {
				return err
			}
			match = func(c *cursor.Cursor) (bool, error) {
				if c.Node().Type != want {
					return false, nil
				}
				return pred.Match(c)
			}
		}
		hit, err := cursor.New(doc).Search(match)
		if err != nil {
			return err
		}
		if hit == nil {
			return fmt.Errorf("no match")
		}
		out, err := ir.ToJSON(hit.Node())
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", hit.Path(), string(out))
		return nil
	},
}
