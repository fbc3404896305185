package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tilefish/packmule/internal/utils"
	"github.com/tilefish/packmule/pkg/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent export runs (default 50)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := utils.GetAbsDBPath(viper.GetString("history.dbpath"))
		if err != nil {
			return err
		}
		if _, err := os.Stat(dbPath); err != nil {
			return fmt.Errorf("no export history yet (%s)", dbPath)
		}

		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		runs, err := db.ListRuns(context.Background(), limit)
		if err != nil {
			return err
		}
		for _, r := range runs {
			ts := r.OccurredAt.Format("2006-01-02 15:04:05")
			fmt.Printf("%s  %-11s  %-3d item(s)  %s  [%s]\n", ts, r.Format, r.ItemCount, r.Destination, r.Items)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 50, "Number of recent export runs to show")
}
