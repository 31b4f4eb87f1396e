package database

import (
	"fmt"
	"log/slog" // use slog for structured logging
	"strings"

	"aniflow/internal/config"
	"aniflow/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens a GORM handle against the engine named by DATABASE_URL.
// postgres:// URLs get the PostgreSQL driver; anything else is treated as a
// SQLite DSN, which keeps local verification possible without a running
// server (e.g. DATABASE_URL="file::memory:?cache=shared").
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		// SQLite ships with foreign keys off; the cascade rules depend on them.
		// Forcing the pragma through the DSN covers every pooled connection.
		dsn := cfg.DatabaseURL
		if !strings.Contains(dsn, "_foreign_keys=") && !strings.Contains(dsn, "_fk=") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "_foreign_keys=on"
		}
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	if db.Dialector.Name() == "sqlite" {
		// One writer; also keeps an in-memory database alive across queries.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	}

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		// close the handle if ping fails to avoid resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Connected to the database successfully", "dialect", db.Dialector.Name())
	return db, nil
}

// Migrate materializes the schema: it creates the seven tables with their
// columns, primary keys, foreign keys and indexes. AutoMigrate only adds
// missing structures, so running it against an already-populated database
// is safe and never drops data.
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	// Parents before children so the foreign keys have something to reference.
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Anime{},
		&models.Rating{},
		&models.Note{},
		&models.Watchlist{},
		&models.WatchlistItem{},
	); err != nil {
		return fmt.Errorf("failed to materialize schema: %w", err)
	}

	logger.Info("Database schema materialized successfully")
	return nil
}

// TableNames lists the tables Migrate creates, in creation order.
func TableNames() []string {
	return []string{
		models.User{}.TableName(),
		models.UserProfile{}.TableName(),
		models.Anime{}.TableName(),
		models.Rating{}.TableName(),
		models.Note{}.TableName(),
		models.Watchlist{}.TableName(),
		models.WatchlistItem{}.TableName(),
	}
}
