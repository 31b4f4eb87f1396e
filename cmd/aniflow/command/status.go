package command

import (
	"fmt"

	"aniflow/database"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report which aniflow tables exist in the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		db, err := database.Connect(cfg, logger)
		if err != nil {
			return err
		}

		migrator := db.Migrator()
		missing := 0
		for _, table := range database.TableNames() {
			if migrator.HasTable(table) {
				fmt.Printf("  %-16s present\n", table)
			} else {
				fmt.Printf("  %-16s missing\n", table)
				missing++
			}
		}

		if missing > 0 {
			fmt.Printf("%d table(s) missing; run \"aniflow migrate\" to create them.\n", missing)
		} else {
			fmt.Println("All tables present.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
