package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tilefish/packmule/internal/utils"
	"github.com/tilefish/packmule/pkg/catalog"
	"github.com/tilefish/packmule/pkg/export"
	"github.com/tilefish/packmule/pkg/selection"
	"github.com/tilefish/packmule/pkg/storage"
)

// exportCmd builds a selection from --item selectors and writes it in
// the configured output layout.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a selection of items for the mod",
	Long: `Builds a selection from repeated --item selectors and writes it out.

A selector is an item id, qualified id or display name, optionally
followed by a quantity: --item 390:25 --item "(W)4" --item "Prismatic Shard:3".

With --format config the selection is written as a single config.json.
With --format contentpack a Content Patcher pack directory is created
under the output path.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		selectors, _ := cmd.Flags().GetStringArray("item")
		out, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")
		capacity, _ := cmd.Flags().GetInt("capacity")

		if format == "" {
			format = viper.GetString("export.format")
		}
		if format != "config" && format != "contentpack" {
			return fmt.Errorf("unknown format %q (want config or contentpack)", format)
		}
		if len(selectors) == 0 {
			return fmt.Errorf("nothing to export, pass at least one --item selector")
		}

		store := catalog.NewStore()
		res := store.Load(catalogSource())
		if res.Fallback {
			utils.Log.Info("Using built-in item list (", res.Count, " items)")
		}

		set := selection.NewSet()
		if capacity == 0 {
			capacity = viper.GetInt("selection.capacity")
		}
		set.SetCapacity(capacity)

		for _, sel := range selectors {
			name, qty := splitSelector(sel)
			item, ok := findItem(store, name)
			if !ok {
				return fmt.Errorf("no catalog item matches %q", name)
			}
			entry, err := set.Add(item)
			if err != nil {
				utils.Log.Warn("Skipping ", item.Name, ": ", err)
				continue
			}
			if qty != "" {
				set.SetQuantity(entry, qty)
			}
		}

		if !set.CanSave(out) {
			return fmt.Errorf("nothing to save: need a non-empty selection and an output path (-o)")
		}

		dest := out
		switch format {
		case "config":
			if err := export.WriteConfig(set, out); err != nil {
				return err
			}
		case "contentpack":
			packDir, err := export.WriteContentPack(set, out, packMeta())
			if err != nil {
				return err
			}
			dest = packDir
		}

		utils.Log.Info("Exported ", set.Len(), " items to ", dest)
		recordRun(format, dest, set)
		return nil
	},
}

// packMeta assembles the Mode B manifest fields from config.
func packMeta() export.PackMeta {
	return export.PackMeta{
		Author:      viper.GetString("pack.author"),
		Version:     viper.GetString("pack.version"),
		Description: viper.GetString("pack.description"),
		TargetMod:   viper.GetString("pack.target_mod"),
	}
}

// splitSelector separates "name:qty" into its parts. The quantity part
// must be the trailing segment; names themselves never contain colons.
func splitSelector(sel string) (name, qty string) {
	if i := strings.LastIndex(sel, ":"); i > 0 {
		return sel[:i], sel[i+1:]
	}
	return sel, ""
}

// findItem resolves a selector against the catalog: exact id, exact
// qualified id, then case-insensitive display name.
func findItem(store *catalog.Store, selector string) (catalog.Item, bool) {
	for _, it := range store.Items() {
		if it.Id == selector || it.QualifiedItemId == selector {
			return it, true
		}
	}
	for _, it := range store.Items() {
		if strings.EqualFold(it.Name, selector) {
			return it, true
		}
	}
	return catalog.Item{}, false
}

// recordRun appends the export to the history database. Best-effort:
// failures are logged, never returned.
func recordRun(format, dest string, set *selection.Set) {
	if !viper.GetBool("history.enabled") {
		return
	}

	dbPath, err := utils.GetAbsDBPath(viper.GetString("history.dbpath"))
	if err != nil {
		utils.Log.Warn("Not recording export history: ", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		utils.Log.Warn("Not recording export history: ", err)
		return
	}

	lock, err := utils.NewDBLock(dbPath)
	if err != nil {
		utils.Log.Warn("Not recording export history: ", err)
		return
	}
	if err := lock.Lock(); err != nil {
		utils.Log.Warn("Not recording export history: ", err)
		return
	}
	defer lock.Unlock()

	db, err := storage.Open(dbPath)
	if err != nil {
		utils.Log.Warn("Not recording export history: ", err)
		return
	}
	defer db.Close()

	summary := make([]string, 0, set.Len())
	for _, e := range set.Entries() {
		summary = append(summary, fmt.Sprintf("%s x%d", e.Item.Name, e.Quantity))
	}
	sort.Strings(summary)

	err = db.RecordRun(context.Background(), storage.Run{
		OccurredAt:  time.Now(),
		Format:      format,
		Destination: dest,
		ItemCount:   set.Len(),
		Items:       strings.Join(summary, ", "),
	})
	if err != nil {
		utils.Log.Warn("Failed to record export history: ", err)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringArrayP("item", "i", nil, "Item selector with optional quantity: id, qualified id or name, e.g. 390:25")
	exportCmd.Flags().StringP("out", "o", "", "Output path: a config file, or a directory for a content pack")
	exportCmd.Flags().StringP("format", "f", "", "Output layout: config or contentpack (default from config file)")
	exportCmd.Flags().Int("capacity", 0, "Maximum number of selectable items (default from config file)")
}
