package repositories

import (
	"strings"
	"time"

	errors "github.com/Laisky/errors/v2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rohits-web03/shopdrive/internal/models"
)

// ConnectDatabase opens the metadata database and runs migrations.
// driver is "postgres" (default) or "sqlite".
func ConnectDatabase(driver, dsn string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := Open(driver, dsn, &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	logger.Info("connected to database", zap.String("driver", db.Dialector.Name()))
	return db, nil
}

// Open opens a gorm handle for driver without migrating.
func Open(driver, dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(dsn))
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
	return gorm.Open(dialector, cfg)
}

// Migrate creates or updates the folders and files tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Folder{}, &models.File{}); err != nil {
		return errors.Wrap(err, "migration failed")
	}
	return nil
}

// sqliteDSN turns on foreign keys so the folder cascade is enforced.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}
