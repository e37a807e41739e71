package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// FromJSON decodes a JSON document into a node tree. Object keys keep
// the order they appear in the input, which json.Unmarshal into a Go
// map would lose.
func FromJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return node, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			res := &Node{Type: ObjectType}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				res.Keys = append(res.Keys, key)
				res.Values = append(res.Values, val)
			}
			// closing '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := &Node{Type: ArrayType}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				res.Values = append(res.Values, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return FromString(t), nil
	case json.Number:
		return fromNumber(t)
	case bool:
		return FromBool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func fromNumber(num json.Number) (*Node, error) {
	if i, err := num.Int64(); err == nil {
		return FromInt(i), nil
	}
	f, err := num.Float64()
	if err != nil {
		return nil, fmt.Errorf("number %q: %w", num.String(), err)
	}
	return FromFloat(f), nil
}

// ToJSON encodes a node tree, keeping object key order.
func ToJSON(y *Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encodeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, y *Node) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			d, err := json.Marshal(*y.Float64)
			if err != nil {
				return err
			}
			buf.Write(d)
		default:
			return fmt.Errorf("number node without a value")
		}
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i := range y.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(y.Keys[i])
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := encodeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode type %s", y.Type)
	}
	return nil
}
