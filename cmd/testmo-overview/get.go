package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testmotools/go-testmo/cursor/kpath"
	"github.com/testmotools/go-testmo/ir"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Resolve a path in a JSON or YAML document and print the value.",
	Long: `Resolve a path in a JSON or YAML document and print the value.

Paths use kinded syntax: fields joined with '.', indices in brackets,
e.g. "users[0].name". The empty path prints the whole document.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		c, err := kpath.Get(doc, args[1])
		if err != nil {
			return err
		}
		out, err := ir.ToJSON(c.Node())
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
