package models

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tagbox/utils"
)

var DB *gorm.DB

// ConnectDataBase Open the configured database and run the schema migration.
// A .env file in the working directory may override the configured driver and
// connection settings (DB_DRIVER, DB_NAME, DB_DSN).
func ConnectDataBase(config *utils.Config) {
	// .env is optional, config supplies the defaults
	_ = godotenv.Load()

	driver := config.Database.Driver
	if v := os.Getenv("DB_DRIVER"); v != "" {
		driver = v
	}

	var (
		dialector gorm.Dialector
		target    string
	)
	switch driver {
	case "mysql":
		dsn := config.Mysql.DSN
		if v := os.Getenv("DB_DSN"); v != "" {
			dsn = v
		}
		dialector = mysql.Open(dsn)
		target = "mysql database"
	case "sqlite", "":
		name := config.Sqlite.Filename
		if v := os.Getenv("DB_NAME"); v != "" {
			name = v
		}
		dbURL := name + ".sqlite"
		dialector = sqlite.Open(dbURL)
		target = fmt.Sprintf("sqlite database at %s", dbURL)
	default:
		log.Fatalf("Unknown database driver %q", driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Cannot connect %s: %v", target, err)
	}
	log.Info(fmt.Sprintf("Connected %s", target))

	if err := Migrate(DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

// Migrate Create or update the schema for all entities. Idempotent, run once
// at startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Project{},
		&Image{},
		&Tag{},
		&Annotation{},
	)
}
