package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromJSONKeyOrder(t *testing.T) {
	node, err := FromJSON([]byte(`{"zebra": 1, "alpha": 2, "mu": {"b": 1, "a": 2}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"zebra", "alpha", "mu"}, node.Keys); diff != "" {
		t.Errorf("top-level keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "a"}, node.Get("mu").Keys); diff != "" {
		t.Errorf("nested keys (-want +got):\n%s", diff)
	}
}

func TestFromJSONNumbers(t *testing.T) {
	node, err := FromJSON([]byte(`[1, 2.5, -3, 1e300]`))
	if err != nil {
		t.Fatal(err)
	}
	if v := node.Values[0].Int64; v == nil || *v != 1 {
		t.Errorf("1 decoded as %v", node.Values[0])
	}
	if v := node.Values[1].Float64; v == nil || *v != 2.5 {
		t.Errorf("2.5 decoded as %v", node.Values[1])
	}
	if v := node.Values[2].Int64; v == nil || *v != -3 {
		t.Errorf("-3 decoded as %v", node.Values[2])
	}
	if v := node.Values[3].Float64; v == nil || *v != 1e300 {
		t.Errorf("1e300 decoded as %v", node.Values[3])
	}
}

func TestFromJSONScalars(t *testing.T) {
	node, err := FromJSON([]byte(`{"s": "text", "t": true, "f": false, "n": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Get("s").Type != StringType || node.Get("s").String != "text" {
		t.Errorf("s = %v", node.Get("s"))
	}
	if !node.Get("t").Bool || node.Get("f").Bool {
		t.Errorf("bools decoded wrong")
	}
	if node.Get("n").Type != NullType {
		t.Errorf("n = %v", node.Get("n"))
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, input := range []string{
		`{"a": 1} trailing`,
		`{"a":`,
		`{]`,
		``,
	} {
		if _, err := FromJSON([]byte(input)); err == nil {
			t.Errorf("FromJSON(%q) did not fail", input)
		}
	}
}

func TestToJSONRoundtrip(t *testing.T) {
	input := `{"zebra":1,"alpha":[true,null,"x"],"mu":{"b":1.5,"a":2}}`
	node, err := FromJSON([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	out, err := ToJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	// key order survives the round trip
	if string(out) != input {
		t.Errorf("got %s, want %s", out, input)
	}
}

func TestFromYAMLKeyOrder(t *testing.T) {
	node, err := FromYAML([]byte("zebra: 1\nalpha:\n  - x\n  - true\nmu: null\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"zebra", "alpha", "mu"}, node.Keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	alpha := node.Get("alpha")
	if alpha.Type != ArrayType || alpha.Len() != 2 {
		t.Fatalf("alpha = %v", alpha)
	}
	if alpha.Values[0].String != "x" || !alpha.Values[1].Bool {
		t.Errorf("alpha elements decoded wrong")
	}
}
