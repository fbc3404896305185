// Package discovery locates the consumer mod's install folder by
// walking a filesystem root.
package discovery

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/tidwall/gjson"

	"github.com/tilefish/packmule/internal/utils"
)

var ErrNotFound = errors.New("mod folder not found")

// errFound stops the walk once a match is seen.
var errFound = errors.New("found")

// Finder matches a mod folder either by its base name or by the
// UniqueID recorded in its manifest.json.
type Finder struct {
	FolderNames []string
	UniqueID    string
}

// DefaultFinder matches the gift hamper mod this tool targets.
func DefaultFinder() Finder {
	return Finder{
		FolderNames: []string{"GiftHamper", "Gift Hamper", "[SMAPI] GiftHamper"},
		UniqueID:    "OrangeFox.GiftHamper",
	}
}

// defaultSearchRoots is the ordered list of game install locations
// tried when the caller gives no root. Static data, not logic.
var defaultSearchRoots = []string{
	`C:\Program Files (x86)\Steam\steamapps\common\Stardew Valley\Mods`,
	`C:\Program Files\Steam\steamapps\common\Stardew Valley\Mods`,
	`C:\GOG Games\Stardew Valley\Mods`,
	"~/.steam/steam/steamapps/common/Stardew Valley/Mods",
	"~/.local/share/Steam/steamapps/common/Stardew Valley/Mods",
	"~/Library/Application Support/Steam/steamapps/common/Stardew Valley/Contents/MacOS/Mods",
	"~/GOG Games/Stardew Valley/game/Mods",
}

// DefaultSearchRoots returns the candidate install roots with home
// directories expanded. Entries that cannot be expanded are dropped.
func DefaultSearchRoots() []string {
	out := make([]string, 0, len(defaultSearchRoots))
	for _, root := range defaultSearchRoots {
		expanded, err := homedir.Expand(root)
		if err != nil {
			continue
		}
		out = append(out, expanded)
	}
	return out
}

// Find walks root recursively and returns the first directory whose
// base name is a known folder name, or whose manifest.json carries the
// target UniqueID. Unreadable subtrees are skipped. Returns ErrNotFound
// when the walk completes without a match.
func (f Finder) Find(root string) (string, error) {
	if _, err := os.Stat(root); err != nil {
		return "", ErrNotFound
	}

	var match string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission errors and racing deletes: skip the subtree.
			utils.Log.Debug("[discover] skipping: ", path)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			for _, name := range f.FolderNames {
				if d.Name() == name {
					match = path
					return errFound
				}
			}
			return nil
		}

		if d.Name() == "manifest.json" && f.UniqueID != "" {
			data, rerr := os.ReadFile(path)
			if rerr != nil {
				return nil
			}
			id := gjson.GetBytes(data, "UniqueID").String()
			if id != "" && strings.Contains(id, f.UniqueID) {
				match = filepath.Dir(path)
				return errFound
			}
		}
		return nil
	})

	if errors.Is(err, errFound) {
		return match, nil
	}
	if err != nil {
		return "", err
	}
	return "", ErrNotFound
}

// FindAny tries each root in order and returns the first match.
func (f Finder) FindAny(roots []string) (string, error) {
	for _, root := range roots {
		if dir, err := f.Find(root); err == nil {
			return dir, nil
		}
	}
	return "", ErrNotFound
}
