package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func mkStore(t *testing.T, items []Item) *Store {
	t.Helper()
	s := NewStore()
	s.replace(items)
	return s
}

func it(id, name, category string) Item {
	return Item{Id: id, Name: name, Type: KindObject, Category: category, MaxStack: 999}
}

func TestStoneFilter(t *testing.T) {
	s := mkStore(t, []Item{
		it("390", "Stone", "Resources"),
		it("751", "Stone", "Resources"),
		it("80", "Mystic Stone", "Minerals"),
	})

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after filtering, got %d: %v", len(items), items)
	}
	if items[0].Id != "390" || items[1].Id != "80" {
		t.Fatalf("wrong items survived the filter: %v", items)
	}
}

func TestCategoriesAllFirstThenSorted(t *testing.T) {
	s := mkStore(t, []Item{
		it("1", "c", "Weapons"),
		it("2", "a", "Crops"),
		it("3", "b", "Minerals"),
		it("4", "d", "Crops"),
	})

	want := []string{"All", "Crops", "Minerals", "Weapons"}
	got := s.Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSearch(t *testing.T) {
	items := []Item{
		it("1", "Iridium Bar", "Metals"),
		it("2", "Iridium Ore", "Resources"),
		it("3", "Gold Bar", "Metals"),
	}

	tests := []struct {
		name     string
		text     string
		category string
		want     int
	}{
		{"empty text all category returns everything", "", AllCategory, 3},
		{"case-insensitive substring", "iRiDiUm", AllCategory, 2},
		{"category restricts", "iridium", "Metals", 1},
		{"empty text with category", "", "Metals", 2},
		{"no match", "prismatic", AllCategory, 0},
	}

	s := mkStore(t, items)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Search(tt.text, tt.category)
			if len(got) != tt.want {
				t.Fatalf("expected %d results, got %d: %v", tt.want, len(got), got)
			}
		})
	}
}

func TestSearchAllReturnsEachItemOnce(t *testing.T) {
	s := NewStore()
	s.Load("") // built-in fallback

	seen := make(map[string]int)
	for _, item := range s.Search("", AllCategory) {
		seen[item.QualifiedItemId]++
	}
	if len(seen) != len(s.Items()) {
		t.Fatalf("expected %d distinct items, got %d", len(s.Items()), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("item %s returned %d times", id, n)
		}
	}
}

func TestLoadFallback(t *testing.T) {
	tests := []struct {
		name   string
		source func(t *testing.T) string
	}{
		{"empty source", func(t *testing.T) string { return "" }},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"invalid json", func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "items.json")
			if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
				t.Fatal(err)
			}
			return path
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			res := s.Load(tt.source(t))
			if !res.Fallback {
				t.Fatal("expected fallback load")
			}
			if res.Err == nil {
				t.Fatal("fallback result should carry the cause")
			}
			if len(s.Items()) == 0 {
				t.Fatal("fallback catalog is empty")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	dump := `[
		{"Id": "74", "Name": "Prismatic Shard", "Type": "Object", "QualifiedItemId": "(O)74", "NameOrIndex": "74", "Category": "Minerals", "MaxStack": 999},
		{"Id": "4", "Name": "Galaxy Sword", "Type": "Weapon", "QualifiedItemId": "(W)4", "NameOrIndex": "Galaxy Sword", "Category": "Weapons", "MaxStack": 0}
	]`
	if err := os.WriteFile(path, []byte(dump), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	res := s.Load(path)
	if res.Fallback {
		t.Fatalf("unexpected fallback: %v", res.Err)
	}
	if res.Count != 2 {
		t.Fatalf("expected 2 items, got %d", res.Count)
	}

	items := s.Items()
	if items[1].Type != KindWeapon {
		t.Fatalf("expected weapon kind, got %v", items[1].Type)
	}
	// MaxStack below 1 is normalized on load.
	if items[1].MaxStack != 1 {
		t.Fatalf("expected MaxStack 1, got %d", items[1].MaxStack)
	}
}
