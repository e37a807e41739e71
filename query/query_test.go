package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/testmotools/go-testmo/cursor"
	"github.com/testmotools/go-testmo/ir"
)

func doc(t *testing.T) *ir.Node {
	t.Helper()
	node, err := ir.FromJSON([]byte(`{
		"projects": [
			{"id": 1, "name": "Widgets"},
			{"id": 2, "name": "Gadgets"}
		]
	}`))
	require.NoError(t, err)
	return node
}

func TestMatchTerminalValue(t *testing.T) {
	pred, err := Compile(`isTerminal && value == "Gadgets"`)
	require.NoError(t, err)

	hit, err := cursor.New(doc(t)).Search(pred.Match)
	require.NoError(t, err)
	require.NotNil(t, hit)
	require.Equal(t, "projects[1].name", hit.Path().String())
}

func TestMatchKeyLookup(t *testing.T) {
	pred, err := Compile(`isMapping && key("name") == "Widgets"`)
	require.NoError(t, err)

	hit, err := cursor.New(doc(t)).Search(pred.Match)
	require.NoError(t, err)
	require.NotNil(t, hit)
	require.Equal(t, "projects[0]", hit.Path().String())
}

func TestMatchPath(t *testing.T) {
	pred, err := Compile(`path == "projects[0].id"`)
	require.NoError(t, err)

	hit, err := cursor.New(doc(t)).Search(pred.Match)
	require.NoError(t, err)
	require.NotNil(t, hit)
	v, err := hit.Value()
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}

func TestNoMatch(t *testing.T) {
	pred, err := Compile(`isSequence && kind == "String"`)
	require.NoError(t, err)

	hit, err := cursor.New(doc(t)).Search(pred.Match)
	require.NoError(t, err)
	require.Nil(t, hit)
}

func TestCompileError(t *testing.T) {
	_, err := Compile(`value ==`)
	require.Error(t, err)
}
