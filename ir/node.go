// Package ir holds the in-memory tree representation consumed by the
// cursor: a recursive tagged union over objects, arrays and scalar
// leaves. Object key order is preserved in slices, so enumeration over
// a decoded document follows the document.
package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

type Node struct {
	Type Type

	// Keys[i] names Values[i] for ObjectType; Keys is nil for
	// ArrayType, where Values alone carries the elements.
	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object whose enumeration order is the order of
// kvs.
func FromKeyVals(kvs ...KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Keys = make([]string, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Keys[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromGoMap builds an object from a Go map. Go maps have no insertion
// order, so keys are sorted to give the object a stable enumeration
// order.
func FromGoMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Keys = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(res.Keys))
	for i, key := range res.Keys {
		res.Values[i] = m[key]
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// FromGo converts an already-deserialized Go value (as produced by
// encoding/json into any) into a node. Map keys are sorted, see
// FromGoMap.
func FromGo(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t, nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		return FromInt(int64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		return fromNumber(t)
	case map[string]any:
		res := &Node{Type: ObjectType}
		res.Keys = slices.Sorted(maps.Keys(t))
		res.Values = make([]*Node, len(res.Keys))
		for i, key := range res.Keys {
			child, err := FromGo(t[key])
			if err != nil {
				return nil, err
			}
			res.Values[i] = child
		}
		return res, nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(t))}
		for i, item := range t {
			child, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			res.Values[i] = child
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

// Get returns the value for field in an object node, or nil when the
// node is not an object or the field is absent.
func (y *Node) Get(field string) *Node {
	for i := range y.Keys {
		if y.Keys[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Len returns the number of entries in an object or elements in an
// array; 0 for leaves.
func (y *Node) Len() int {
	return len(y.Values)
}

// Equal compares two trees structurally. Numbers compare within their
// own representation: an int64 node never equals a float64 node.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		if a.Int64 != nil && b.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		if a.Float64 != nil && b.Float64 != nil {
			return *a.Float64 == *b.Float64
		}
		return false
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for i := range a.Keys {
			if a.Keys[i] != b.Keys[i] {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
