package export

import (
	"os"
	"path/filepath"

	"github.com/tilefish/packmule/pkg/catalog"
	"github.com/tilefish/packmule/pkg/selection"
)

// ConfigFile is the flat config layout (Mode A) read directly by the
// external mod.
type ConfigFile struct {
	ModEnabled    bool         `json:"ModEnabled"`
	SelectedItems []ConfigItem `json:"SelectedItems"`
}

// ConfigItem is one exported selection entry.
type ConfigItem struct {
	Type            catalog.Kind `json:"Type"`
	QualifiedItemId string       `json:"QualifiedItemId"`
	NameOrIndex     string       `json:"NameOrIndex"`
	Quantity        int          `json:"Quantity"`
	DisplayName     string       `json:"DisplayName"`
}

// BuildConfig converts the selection into the config layout, in
// selection order. The mod-enabled flag is always written as true.
func BuildConfig(set *selection.Set) ConfigFile {
	cfg := ConfigFile{
		ModEnabled:    true,
		SelectedItems: make([]ConfigItem, 0, set.Len()),
	}
	for _, e := range set.Entries() {
		cfg.SelectedItems = append(cfg.SelectedItems, ConfigItem{
			Type:            e.Item.Type,
			QualifiedItemId: e.Item.QualifiedItemId,
			NameOrIndex:     e.Item.NameOrIndex,
			Quantity:        e.Quantity,
			DisplayName:     e.Item.Name,
		})
	}
	return cfg
}

// WriteConfig writes the Mode A config file to path, creating parent
// directories as needed. The destination is validated before anything
// touches the filesystem.
func WriteConfig(set *selection.Set, path string) error {
	if path == "" {
		return ErrNoDestination
	}
	if set.Len() == 0 {
		return ErrEmptySelection
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return writeJSON(path, BuildConfig(set))
}
