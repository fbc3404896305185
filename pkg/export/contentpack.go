package export

import (
	"os"
	"path/filepath"

	"github.com/tilefish/packmule/pkg/catalog"
	"github.com/tilefish/packmule/pkg/selection"
)

const (
	// PackTitle names the bundle directory and the pack itself.
	PackTitle = "[CP] Gift Hamper Selection"

	// ContentPatcherID is the packaging framework the bundle targets.
	ContentPatcherID = "Pathoschild.ContentPatcher"

	// ContentFormat is the Content Patcher format version we emit.
	ContentFormat = "2.0.0"

	// DefaultTargetMod is the consumer mod whose data dictionary the
	// bundle edits.
	DefaultTargetMod = "OrangeFox.GiftHamper"
)

// PackMeta carries the user-configurable manifest fields.
type PackMeta struct {
	Author      string
	Version     string
	Description string
	TargetMod   string // consumer mod UniqueID; DefaultTargetMod when empty
}

// Manifest is the SMAPI-style pack manifest.
type Manifest struct {
	Name           string         `json:"Name"`
	Author         string         `json:"Author"`
	Version        string         `json:"Version"`
	Description    string         `json:"Description"`
	UniqueID       string         `json:"UniqueID"`
	ContentPackFor ContentPackFor `json:"ContentPackFor"`
	Dependencies   []Dependency   `json:"Dependencies"`
}

type ContentPackFor struct {
	UniqueID string `json:"UniqueID"`
}

type Dependency struct {
	UniqueID   string `json:"UniqueID"`
	IsRequired bool   `json:"IsRequired"`
}

// ContentFile is the Content Patcher change description.
type ContentFile struct {
	Format  string   `json:"Format"`
	Changes []Change `json:"Changes"`
}

type Change struct {
	Action  string                 `json:"Action"`
	Target  string                 `json:"Target"`
	Entries map[string]HamperEntry `json:"Entries"`
}

// HamperEntry is one item the consumer mod hands out. Min and max
// amount are both the selected quantity; the trigger always fires and
// quality is always base.
type HamperEntry struct {
	NameOrIndex   string `json:"NameOrIndex"`
	Type          string `json:"Type"`
	MinAmount     int    `json:"MinAmount"`
	MaxAmount     int    `json:"MaxAmount"`
	ChancePercent int    `json:"ChancePercent"`
	MinQuality    int    `json:"MinQuality"`
	MaxQuality    int    `json:"MaxQuality"`
}

func (m PackMeta) targetMod() string {
	if m.TargetMod == "" {
		return DefaultTargetMod
	}
	return m.TargetMod
}

// BuildManifest assembles the pack manifest from meta.
func BuildManifest(meta PackMeta) Manifest {
	author := meta.Author
	if author == "" {
		author = "packmule"
	}
	version := meta.Version
	if version == "" {
		version = "1.0.0"
	}
	description := meta.Description
	if description == "" {
		description = "An item selection generated with packmule."
	}

	return Manifest{
		Name:        PackTitle,
		Author:      author,
		Version:     version,
		Description: description,
		UniqueID:    SanitizeKey(author) + ".GiftHamperSelection",
		ContentPackFor: ContentPackFor{
			UniqueID: ContentPatcherID,
		},
		Dependencies: []Dependency{
			{UniqueID: meta.targetMod(), IsRequired: true},
		},
	}
}

// BuildContent assembles the EditData change for the selection. Entry
// keys are namespaced under the consumer mod's UniqueID.
func BuildContent(set *selection.Set, meta PackMeta) ContentFile {
	target := meta.targetMod()

	entries := make(map[string]HamperEntry, set.Len())
	for _, e := range set.Entries() {
		key := target + "/" + SanitizeKey(e.Item.Name)
		entries[key] = HamperEntry{
			NameOrIndex:   e.Item.NameOrIndex,
			Type:          catalog.ContentPatcherType(e.Item.Type),
			MinAmount:     e.Quantity,
			MaxAmount:     e.Quantity,
			ChancePercent: 100,
			MinQuality:    0,
			MaxQuality:    0,
		}
	}

	return ContentFile{
		Format: ContentFormat,
		Changes: []Change{
			{
				Action:  "EditData",
				Target:  "Mods/" + target + "/Hamper",
				Entries: entries,
			},
		},
	}
}

// WriteContentPack writes the Mode B bundle under destDir: a directory
// named PackTitle holding manifest.json and content.json. A failed
// content write can leave the manifest behind; no cleanup is attempted.
func WriteContentPack(set *selection.Set, destDir string, meta PackMeta) (string, error) {
	if destDir == "" {
		return "", ErrNoDestination
	}
	if set.Len() == 0 {
		return "", ErrEmptySelection
	}

	packDir := filepath.Join(destDir, PackTitle)
	if err := os.MkdirAll(packDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(packDir, "manifest.json"), BuildManifest(meta)); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(packDir, "content.json"), BuildContent(set, meta)); err != nil {
		return "", err
	}
	return packDir, nil
}
