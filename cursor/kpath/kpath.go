// Package kpath parses kinded path strings into cursor paths and
// replays paths against a root node. The syntax is the one
// cursor.Path.String renders: fields joined with '.', indices as
// "[i]", fields with metacharacters single-quoted with backslash
// escapes.
//
//	users[0].name
//	runs[2].'custom field'.id
package kpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/testmotools/go-testmo/cursor"
	"github.com/testmotools/go-testmo/ir"
)

// Parse parses a kinded path string. "" parses to the root path.
func Parse(s string) (cursor.Path, error) {
	var p cursor.Path
	rest := s
	for rest != "" {
		switch rest[0] {
		case '.':
			if len(p) == 0 {
				return nil, fmt.Errorf("path %q may not start with '.'", s)
			}
			field, r, err := parseField(rest[1:])
			if err != nil {
				return nil, err
			}
			p = append(p, cursor.FieldSegment(field))
			rest = r
		case '[':
			end := strings.IndexByte(rest[1:], ']')
			if end == -1 {
				return nil, fmt.Errorf("path %q: expected '[' <index> ']'", s)
			}
			u, err := strconv.ParseUint(rest[1:end+1], 10, 31)
			if err != nil {
				return nil, fmt.Errorf("path %q: index %q: %w", s, rest[1:end+1], err)
			}
			p = append(p, cursor.IndexSegment(int(u)))
			rest = rest[end+2:]
		default:
			if len(p) != 0 {
				return nil, fmt.Errorf("path %q: expected '.' or '[' at %q", s, rest)
			}
			field, r, err := parseField(rest)
			if err != nil {
				return nil, err
			}
			p = append(p, cursor.FieldSegment(field))
			rest = r
		}
	}
	return p, nil
}

// parseField reads one field name, quoted or bare, and returns the
// unparsed remainder.
func parseField(frag string) (field, rest string, err error) {
	if frag == "" {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field before %q", frag)
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		if escaped {
			res = append(res, c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of path scanning for \"'\"")
}

// Resolve replays a path from root, one Child/Index step per segment.
// The returned cursor's path equals p.
func Resolve(root *ir.Node, p cursor.Path) (*cursor.Cursor, error) {
	c := cursor.New(root)
	var err error
	for _, seg := range p {
		switch {
		case seg.Field != nil:
			c, err = c.Child(*seg.Field)
		case seg.Index != nil:
			c, err = c.Index(*seg.Index)
		default:
			return nil, fmt.Errorf("segment without field or index")
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Get parses a path string and resolves it against root in one step.
func Get(root *ir.Node, s string) (*cursor.Cursor, error) {
	p, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return Resolve(root, p)
}
