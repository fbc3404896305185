package cmd

import (
	"testing"

	"github.com/tilefish/packmule/pkg/catalog"
)

func TestSplitSelector(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantQty  string
	}{
		{"390", "390", ""},
		{"390:25", "390", "25"},
		{"Prismatic Shard:3", "Prismatic Shard", "3"},
		{"(W)4", "(W)4", ""},
		{"(W)4:1", "(W)4", "1"},
		{"Stone:", "Stone", ""},
	}

	for _, tt := range tests {
		name, qty := splitSelector(tt.in)
		if name != tt.wantName || qty != tt.wantQty {
			t.Fatalf("splitSelector(%q) = %q, %q; want %q, %q", tt.in, name, qty, tt.wantName, tt.wantQty)
		}
	}
}

func TestFindItem(t *testing.T) {
	store := catalog.NewStore()
	store.Load("") // built-in list

	tests := []struct {
		selector string
		wantName string
		wantOK   bool
	}{
		{"74", "Prismatic Shard", true},
		{"(O)74", "Prismatic Shard", true},
		{"prismatic shard", "Prismatic Shard", true},
		{"Galaxy Sword", "Galaxy Sword", true},
		{"NoSuchItem", "", false},
	}

	for _, tt := range tests {
		item, ok := findItem(store, tt.selector)
		if ok != tt.wantOK {
			t.Fatalf("findItem(%q) ok = %t, want %t", tt.selector, ok, tt.wantOK)
		}
		if ok && item.Name != tt.wantName {
			t.Fatalf("findItem(%q) = %q, want %q", tt.selector, item.Name, tt.wantName)
		}
	}
}
