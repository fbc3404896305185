// Package catalog loads the game item dump and exposes the query
// operations the selection UI is built on: category grouping and
// case-insensitive name search.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/tilefish/packmule/internal/utils"
)

// Item is one record of the item dump. Immutable after load.
type Item struct {
	Id              string `json:"Id"`
	Name            string `json:"Name"`
	Type            Kind   `json:"Type"`
	QualifiedItemId string `json:"QualifiedItemId"`
	NameOrIndex     string `json:"NameOrIndex"`
	Category        string `json:"Category"`
	MaxStack        int    `json:"MaxStack"`
	Description     string `json:"Description,omitempty"`
}

// AllCategory is the synthetic pseudo-category that matches every item.
const AllCategory = "All"

// The base game ships several map decorations named "Stone" alongside the
// real resource item (id 390). Only the real one is worth selecting.
const (
	stoneName   = "Stone"
	stoneItemID = "390"
)

// Store holds the loaded catalog and its derived category index.
type Store struct {
	items      []Item
	categories []string
}

// LoadResult reports how a load went. Fallback loads are not errors:
// the store stays usable on the built-in list and Err carries the cause
// for status display.
type LoadResult struct {
	Source   string
	Count    int
	Fallback bool
	Err      error
}

func NewStore() *Store {
	return &Store{}
}

// Load replaces the catalog with items parsed from source, which is a
// file path or an http(s) URL. Any failure falls back to the built-in
// item list so the tool stays usable without a dump file.
func (s *Store) Load(source string) LoadResult {
	items, err := readItems(source)
	if err != nil {
		utils.Log.Warn("Catalog load failed, using built-in items: ", err)
		s.replace(builtinItems())
		return LoadResult{Source: source, Count: len(s.items), Fallback: true, Err: err}
	}

	s.replace(items)
	utils.Log.Debugf("Loaded %d items from %s", len(s.items), source)
	return LoadResult{Source: source, Count: len(s.items)}
}

func readItems(source string) ([]Item, error) {
	if source == "" {
		return nil, fmt.Errorf("no catalog source configured")
	}

	var data []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetchItems(source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse item dump %s: %w", source, err)
	}
	return items, nil
}

func fetchItems(url string) ([]byte, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = log.New(io.Discard, "", 0)
	retryClient.RetryMax = 3

	res, err := retryClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return nil, fmt.Errorf("unexpected status %d fetching %s", res.StatusCode, url)
	}
	return io.ReadAll(res.Body)
}

func (s *Store) replace(items []Item) {
	s.items = filterDuplicateStones(items)
	for i := range s.items {
		if s.items[i].MaxStack < 1 {
			s.items[i].MaxStack = 1
		}
	}
	s.rebuildCategories()
}

// filterDuplicateStones drops the decoration entries that share the
// "Stone" display name with the real resource item. Items that merely
// contain the substring ("Mystic Stone") are kept.
func filterDuplicateStones(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Name == stoneName && it.Id != stoneItemID {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *Store) rebuildCategories() {
	seen := make(map[string]struct{})
	for _, it := range s.items {
		seen[it.Category] = struct{}{}
	}

	cats := make([]string, 0, len(seen)+1)
	for c := range seen {
		if c != "" {
			cats = append(cats, c)
		}
	}
	sort.Strings(cats)
	s.categories = append([]string{AllCategory}, cats...)
}

// Items returns the full loaded catalog.
func (s *Store) Items() []Item {
	return s.items
}

// Categories returns "All" followed by the catalog's distinct category
// labels in lexicographic order.
func (s *Store) Categories() []string {
	return s.categories
}

// Search returns the items in category (AllCategory matches everything)
// whose display name contains text case-insensitively. Empty text
// matches every item. Result order is unspecified; callers sort.
func (s *Store) Search(text, category string) []Item {
	needle := strings.ToLower(text)

	var out []Item
	for _, it := range s.items {
		if category != AllCategory && it.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}
