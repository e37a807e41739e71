package testmo

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/testmotools/go-testmo/cursor"
	"github.com/testmotools/go-testmo/ir"
)

type Project struct {
	ID   int64
	Name string
}

// FindProject locates a project by name or by numeric id in a fetched
// project list. The match is the first mapping whose name or id field
// equals nameOrID, found by a pre-order cursor search.
func FindProject(projects []*ir.Node, nameOrID string) (*Project, error) {
	root := cursor.New(ir.FromSlice(projects))
	hit, err := root.Search(func(c *cursor.Cursor) (bool, error) {
		if !c.IsMapping() {
			return false, nil
		}
		n := c.Node()
		if name := n.Get("name"); name != nil && name.Type == ir.StringType && name.String == nameOrID {
			return true, nil
		}
		if id := n.Get("id"); id != nil && id.Int64 != nil {
			return strconv.FormatInt(*id.Int64, 10) == nameOrID, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if hit == nil {
		return nil, fmt.Errorf("project %q not found", nameOrID)
	}
	return projectFromNode(hit.Node())
}

func projectFromNode(n *ir.Node) (*Project, error) {
	id := n.Get("id")
	if id == nil || id.Int64 == nil {
		return nil, fmt.Errorf("project entry has no id")
	}
	name := n.Get("name")
	if name == nil || name.Type != ir.StringType {
		return nil, fmt.Errorf("project entry has no name")
	}
	return &Project{ID: *id.Int64, Name: name.String}, nil
}

// ProjectChoices extracts id/name pairs from a fetched project list,
// sorted by name, for display and selection.
func ProjectChoices(projects []*ir.Node) ([]Project, error) {
	choices := make([]Project, 0, len(projects))
	for _, p := range projects {
		choice, err := projectFromNode(p)
		if err != nil {
			return nil, err
		}
		choices = append(choices, *choice)
	}
	sort.Slice(choices, func(i, j int) bool {
		return choices[i].Name < choices[j].Name
	})
	return choices, nil
}
