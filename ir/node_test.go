package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromKeyValsOrder(t *testing.T) {
	obj := FromKeyVals(
		KeyVal{"zebra", FromInt(1)},
		KeyVal{"alpha", FromInt(2)},
		KeyVal{"mu", FromInt(3)},
	)
	want := []string{"zebra", "alpha", "mu"}
	if diff := cmp.Diff(want, obj.Keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestFromGoMapSortsKeys(t *testing.T) {
	obj := FromGoMap(map[string]*Node{
		"zebra": FromInt(1),
		"alpha": FromInt(2),
	})
	want := []string{"alpha", "zebra"}
	if diff := cmp.Diff(want, obj.Keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestFromGo(t *testing.T) {
	node, err := FromGo(map[string]any{
		"name": "Alice",
		"age":  30,
		"tags": []any{"x", "y"},
		"none": nil,
	})
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ObjectType {
		t.Fatalf("got %s, want Object", node.Type)
	}
	if got := node.Get("name").String; got != "Alice" {
		t.Errorf("name = %q", got)
	}
	if got := node.Get("age").Int64; got == nil || *got != 30 {
		t.Errorf("age = %v", got)
	}
	tags := node.Get("tags")
	if tags.Type != ArrayType || tags.Len() != 2 {
		t.Errorf("tags = %v", tags)
	}
	if node.Get("none").Type != NullType {
		t.Errorf("none is not null")
	}
}

func TestFromGoUnsupported(t *testing.T) {
	if _, err := FromGo(struct{}{}); err == nil {
		t.Error("expected error for struct input")
	}
}

func TestGetAbsent(t *testing.T) {
	obj := FromKeyVals(KeyVal{"a", Null()})
	if obj.Get("b") != nil {
		t.Error("Get on absent key should be nil")
	}
	if FromString("a").Get("a") != nil {
		t.Error("Get on a leaf should be nil")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"null", Null(), Null(), true},
		{"string", FromString("x"), FromString("x"), true},
		{"string diff", FromString("x"), FromString("y"), false},
		{"int", FromInt(3), FromInt(3), true},
		{"int vs float", FromInt(3), FromFloat(3), false},
		{"type diff", FromString("3"), FromInt(3), false},
		{
			"object order matters",
			FromKeyVals(KeyVal{"a", FromInt(1)}, KeyVal{"b", FromInt(2)}),
			FromKeyVals(KeyVal{"b", FromInt(2)}, KeyVal{"a", FromInt(1)}),
			false,
		},
		{
			"array",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			true,
		},
		{
			"array len diff",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}
