// Package query compiles expression-language predicates over cursors,
// for use with cursor.Search. Programs see the current node through a
// small environment:
//
//	value        terminal value (string, int, float, bool, nil), nil for containers
//	path         the node's kinded path string
//	kind         node type name ("Object", "Array", "String", ...)
//	isMapping    classification booleans
//	isSequence
//	isTerminal
//	key(name)    terminal value of a mapping entry, nil when absent
//
// Example: find the entry whose name field equals X:
//
//	isMapping && key("name") == "X"
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/testmotools/go-testmo/cursor"
	"github.com/testmotools/go-testmo/ir"
)

type Predicate struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Predicate, error) {
	prog, err := expr.Compile(src,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Predicate{src: src, prog: prog}, nil
}

// Match evaluates the predicate against one cursor. A non-bool program
// result is an error.
func (p *Predicate) Match(c *cursor.Cursor) (bool, error) {
	out, err := expr.Run(p.prog, environment(c))
	if err != nil {
		return false, fmt.Errorf("eval %q at %q: %w", p.src, c.Path(), err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("predicate %q returned %T, want bool", p.src, out)
	}
	return ok, nil
}

func environment(c *cursor.Cursor) map[string]any {
	return map[string]any{
		"value":      terminalValue(c),
		"path":       c.Path().String(),
		"kind":       kindName(c.Node().Type),
		"isMapping":  c.IsMapping(),
		"isSequence": c.IsSequence(),
		"isTerminal": c.IsTerminal(),
		"key": func(name string) any {
			child, err := c.Child(name)
			if err != nil {
				return nil
			}
			return terminalValue(child)
		},
	}
}

func kindName(t ir.Type) string {
	b, _ := t.MarshalText()
	return string(b)
}

func terminalValue(c *cursor.Cursor) any {
	v, err := c.Value()
	if err != nil {
		return nil
	}
	return v
}
