package catalog

import (
	"encoding/json"
	"testing"
)

func TestContentPatcherType(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindObject, "Object"},
		{KindBigCraftable, "BigCraftable"},
		{KindTool, "Tool"},
		{KindWeapon, "MeleeWeapon"},
		{KindBoots, "Boots"},
		{KindHat, "Hat"},
		{KindTrinket, "Object"},
		{Kind(42), "Object"}, // anything unrecognized rides along as Object
	}

	for _, tt := range tests {
		if got := ContentPatcherType(tt.kind); got != tt.want {
			t.Fatalf("ContentPatcherType(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for k, name := range kindNames {
		parsed, ok := ParseKind(name)
		if !ok || parsed != k {
			t.Fatalf("ParseKind(%q) = %v, %t", name, parsed, ok)
		}
	}

	if _, ok := ParseKind("Furniture"); ok {
		t.Fatal("unknown kind string should not parse")
	}
}

func TestKindJSON(t *testing.T) {
	data, err := json.Marshal(KindBigCraftable)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"BigCraftable"` {
		t.Fatalf("unexpected wire form: %s", data)
	}

	var k Kind
	if err := json.Unmarshal([]byte(`"Hat"`), &k); err != nil {
		t.Fatal(err)
	}
	if k != KindHat {
		t.Fatalf("expected KindHat, got %v", k)
	}

	// Unknown strings decode as Object rather than failing the dump.
	if err := json.Unmarshal([]byte(`"Furniture"`), &k); err != nil {
		t.Fatal(err)
	}
	if k != KindObject {
		t.Fatalf("expected KindObject for unknown string, got %v", k)
	}
}
