package command

import (
	"aniflow/database"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Materialize the schema against the configured database",
	Long: `Connect to the database named by DATABASE_URL and create the seven
aniflow tables (user, user_profile, anime, rating, note, watchlist,
watchlist_item) with their columns, keys and indexes.

Running migrate against a database that already carries the schema only adds
missing structures; it never drops data.`,
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

		return database.Migrate(db, logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
