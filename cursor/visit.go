package cursor

import "github.com/testmotools/go-testmo/ir"

// Signal is the handler's verdict on an entering call.
type Signal int

const (
	// Continue descends into the node's children as usual.
	Continue Signal = iota
	// Prune skips the node's children and its exit call. Only
	// meaningful on an entering call; the signal of an exit call is
	// ignored.
	Prune
)

// Visit walks the cursor's subtree depth-first. Containers receive an
// entering call, then all of their children's calls, then one matching
// exit call (entering == false). Terminals receive only the entering
// call. Returning Prune from an entering call suppresses both the
// descent and the exit call for that node. An error from fn aborts the
// remaining traversal and is returned unchanged; Visit itself buffers
// nothing, all effects belong to the handler.
func (c *Cursor) Visit(fn func(c *Cursor, entering bool) (Signal, error)) error {
	sig, err := fn(c, true)
	if err != nil {
		return err
	}
	if sig == Prune {
		return nil
	}
	switch c.node.Type {
	case ir.ObjectType:
		for i, key := range c.node.Keys {
			if err := at(c.node.Values[i], c.path.extend(FieldSegment(key))).Visit(fn); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for i, v := range c.node.Values {
			if err := at(v, c.path.extend(IndexSegment(i))).Visit(fn); err != nil {
				return err
			}
		}
	default:
		// terminal: no children to bound, no exit call
		return nil
	}
	_, err = fn(c, false)
	return err
}
