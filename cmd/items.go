package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tilefish/packmule/internal/utils"
	"github.com/tilefish/packmule/pkg/catalog"
)

// itemsCmd lists and searches the loaded item catalog.
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List and search the item catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")
		listCategories, _ := cmd.Flags().GetBool("categories")

		store := catalog.NewStore()
		res := store.Load(catalogSource())
		if res.Fallback {
			utils.Log.Info("Using built-in item list (", res.Count, " items)")
		}

		if listCategories {
			for _, c := range store.Categories() {
				fmt.Println(c)
			}
			return nil
		}

		items := store.Search(search, category)
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

		for _, it := range items {
			fmt.Printf("%-30s  %-14s  %-20s  max %d\n", it.Name, it.QualifiedItemId, it.Category, it.MaxStack)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)
	itemsCmd.Flags().StringP("search", "s", "", "Only show items whose name contains this text (case-insensitive)")
	itemsCmd.Flags().StringP("category", "c", catalog.AllCategory, "Only show items in this category")
	itemsCmd.Flags().Bool("categories", false, "List the known categories instead of items")
}
