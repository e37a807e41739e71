// Package cursor navigates heterogeneous tree documents while
// recording the path taken from the root. A cursor is an immutable
// (node, path) pair: navigation derives new cursors and never touches
// the underlying tree, so read-only sharing is safe as long as nobody
// mutates the tree concurrently.
package cursor

import (
	"fmt"

	"github.com/testmotools/go-testmo/ir"
)

type Cursor struct {
	node *ir.Node
	path Path
}

// New returns a root cursor with an empty path.
func New(root *ir.Node) *Cursor {
	return &Cursor{node: root}
}

// at is the internal constructor for derived cursors; path must be
// freshly allocated by the caller.
func at(node *ir.Node, path Path) *Cursor {
	return &Cursor{node: node, path: path}
}

// Node returns the underlying node. The tree remains caller-owned; the
// cursor holds a reference, not a copy.
func (c *Cursor) Node() *ir.Node {
	return c.node
}

// Path returns a copy of the path from the root to this cursor, one
// segment per navigation step.
func (c *Cursor) Path() Path {
	return c.path.Clone()
}

func (c *Cursor) IsMapping() bool {
	return c.node.Type == ir.ObjectType
}

func (c *Cursor) IsSequence() bool {
	return c.node.Type == ir.ArrayType
}

func (c *Cursor) IsTerminal() bool {
	return c.node.Type.IsLeaf()
}

// Child navigates to the value of a mapping entry.
func (c *Cursor) Child(name string) (*Cursor, error) {
	if !c.IsMapping() {
		return nil, fmt.Errorf("%w: %s at %q", ErrTypeMismatch, c.node.Type, c.path)
	}
	child := c.node.Get(name)
	if child == nil {
		return nil, fmt.Errorf("%w: %q at %q", ErrKeyNotFound, name, c.path)
	}
	return at(child, c.path.extend(FieldSegment(name))), nil
}

// Index navigates to an element of a sequence.
func (c *Cursor) Index(i int) (*Cursor, error) {
	if !c.IsSequence() {
		return nil, fmt.Errorf("%w: %s at %q", ErrNotASequence, c.node.Type, c.path)
	}
	if i < 0 || i >= len(c.node.Values) {
		return nil, fmt.Errorf("%w: %d of %d at %q", ErrIndexOutOfRange, i, len(c.node.Values), c.path)
	}
	return at(c.node.Values[i], c.path.extend(IndexSegment(i))), nil
}

// Value returns the scalar held by a terminal node: string, int64,
// float64, bool, or nil for null.
func (c *Cursor) Value() (any, error) {
	switch c.node.Type {
	case ir.ObjectType, ir.ArrayType:
		return nil, fmt.Errorf("%w: %s at %q", ErrNotATerminal, c.node.Type, c.path)
	case ir.StringType:
		return c.node.String, nil
	case ir.BoolType:
		return c.node.Bool, nil
	case ir.NumberType:
		if c.node.Int64 != nil {
			return *c.node.Int64, nil
		}
		if c.node.Float64 != nil {
			return *c.node.Float64, nil
		}
		return nil, fmt.Errorf("number node without a value at %q", c.path)
	default:
		return nil, nil
	}
}
