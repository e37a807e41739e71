package cursor

import "github.com/testmotools/go-testmo/ir"

// Search scans the cursor's subtree, root included, in pre-order:
// a node before its children, mapping entries in insertion order,
// sequence elements in index order. The first cursor satisfying pred
// is returned and the scan stops; (nil, nil) means no match. An error
// from pred aborts the whole search and is returned unchanged.
func (c *Cursor) Search(pred func(*Cursor) (bool, error)) (*Cursor, error) {
	ok, err := pred(c)
	if err != nil {
		return nil, err
	}
	if ok {
		return c, nil
	}
	switch c.node.Type {
	case ir.ObjectType:
		for i, key := range c.node.Keys {
			hit, err := at(c.node.Values[i], c.path.extend(FieldSegment(key))).Search(pred)
			if hit != nil || err != nil {
				return hit, err
			}
		}
	case ir.ArrayType:
		for i, v := range c.node.Values {
			hit, err := at(v, c.path.extend(IndexSegment(i))).Search(pred)
			if hit != nil || err != nil {
				return hit, err
			}
		}
	}
	return nil, nil
}
