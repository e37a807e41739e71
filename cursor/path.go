package cursor

import (
	"bytes"
	"fmt"
	"strings"
)

// Segment addresses one navigation step from a parent node: a mapping
// key or a sequence index. Exactly one of Field and Index is set.
type Segment struct {
	Field *string
	Index *int
}

func FieldSegment(name string) Segment {
	return Segment{Field: &name}
}

func IndexSegment(i int) Segment {
	return Segment{Index: &i}
}

// Path is the ordered list of segments from the root to a node. The
// root path is empty.
type Path []Segment

// String renders the path in kinded syntax: fields joined with '.',
// indices as "[i]". Fields containing metacharacters are single-quoted
// with backslash escapes. The root path renders as "".
func (p Path) String() string {
	buf := bytes.NewBuffer(nil)
	for _, seg := range p {
		if seg.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(quoteField(*seg.Field))
			continue
		}
		if seg.Index != nil {
			fmt.Fprintf(buf, "[%d]", *seg.Index)
		}
	}
	return buf.String()
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	res := make(Path, len(p))
	copy(res, p)
	return res
}

// extend allocates a fresh path so sibling cursors never share backing
// arrays.
func (p Path) extend(seg Segment) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = seg
	return res
}

const fieldMeta = "'.*$[]{} \t"

// fieldQuoter escapes backslashes as well as quotes, so in the quoted
// form every backslash starts an escape.
var fieldQuoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteField(f string) string {
	if f != "" && !strings.ContainsAny(f, fieldMeta) {
		return f
	}
	return "'" + fieldQuoter.Replace(f) + "'"
}
