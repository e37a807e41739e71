package ir

import "testing"

func TestTypeText(t *testing.T) {
	for _, tc := range []struct {
		typ  Type
		name string
		leaf bool
	}{
		{NullType, "Null", true},
		{NumberType, "Number", true},
		{StringType, "String", true},
		{BoolType, "Bool", true},
		{ObjectType, "Object", false},
		{ArrayType, "Array", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.typ.String(); got != tc.name {
				t.Errorf("String() = %q, want %q", got, tc.name)
			}
			text, err := tc.typ.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			if string(text) != tc.name {
				t.Errorf("MarshalText() = %q, want %q", text, tc.name)
			}
			var back Type
			if err := back.UnmarshalText(text); err != nil {
				t.Fatal(err)
			}
			if back != tc.typ {
				t.Errorf("UnmarshalText(%q) = %v, want %v", text, back, tc.typ)
			}
			if got := tc.typ.IsLeaf(); got != tc.leaf {
				t.Errorf("IsLeaf() = %v, want %v", got, tc.leaf)
			}
		})
	}
}

func TestTypesCoversAll(t *testing.T) {
	if len(Types()) != 6 {
		t.Fatalf("Types() has %d entries", len(Types()))
	}
	seen := map[Type]bool{}
	for _, typ := range Types() {
		if seen[typ] {
			t.Errorf("duplicate type %s", typ)
		}
		seen[typ] = true
	}
}

func TestUnmarshalTextUnknown(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("Comment")); err == nil {
		t.Error("expected error for unknown type name")
	}
}
