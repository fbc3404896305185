package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilefish/packmule/internal/utils"
	"github.com/tilefish/packmule/pkg/discovery"
)

// discoverCmd locates the installed consumer mod folder.
var discoverCmd = &cobra.Command{
	Use:   "discover [root]",
	Short: "Locate the Gift Hamper mod folder",
	Long: `Searches for the installed Gift Hamper mod folder. With a root
argument only that directory tree is searched; otherwise the usual game
install locations are tried in order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		finder := discovery.DefaultFinder()

		var dir string
		var err error
		if len(args) == 1 {
			dir, err = finder.Find(args[0])
		} else {
			utils.Log.Debug("No root given, trying default install locations")
			dir, err = finder.FindAny(discovery.DefaultSearchRoots())
		}
		if errors.Is(err, discovery.ErrNotFound) {
			return fmt.Errorf("mod folder not found, is %s installed?", finder.UniqueID)
		}
		if err != nil {
			return err
		}

		fmt.Println(dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
