package ir

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes a YAML document into a node tree. Mappings are
// decoded through yaml.MapSlice so key order survives.
func FromYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAMLValue(v)
}

func fromYAMLValue(v any) (*Node, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		res := &Node{Type: ObjectType}
		res.Keys = make([]string, len(t))
		res.Values = make([]*Node, len(t))
		for i, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", item.Key)
			}
			val, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			res.Keys[i] = key
			res.Values[i] = val
		}
		return res, nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(t))}
		for i, item := range t {
			val, err := fromYAMLValue(item)
			if err != nil {
				return nil, err
			}
			res.Values[i] = val
		}
		return res, nil
	default:
		return FromGo(v)
	}
}
