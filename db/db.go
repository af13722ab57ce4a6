package db

import (
	"errors"
	"strings"

	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/config"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/models"

	"gorm.io/driver/postgres"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// Open connects to the database named by DATABASE_URL and migrates the
// schema. A postgres:// URL gets the postgres driver; anything else is
// treated as a sqlite file path.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	url := cfg.DatabaseURL
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		conn, err = gorm.Open(postgres.Open(url), &gorm.Config{})
	} else {
		conn, err = gorm.Open(moderncSqlite.New(moderncSqlite.Config{
			DSN:        sqliteDSN(url),
			DriverName: "sqlite",
		}), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	err = conn.AutoMigrate(
		&models.Instructor{},
		&models.Player{},
		&models.Metric{},
		&models.InstructorFavorite{},
		&models.CoachNote{},
	)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// sqliteDSN normalizes a sqlite path to a file: URI with foreign keys
// enforced. The pragma rides in the DSN so every pooled connection
// gets it, not just the first.
func sqliteDSN(url string) string {
	url = strings.TrimPrefix(url, "sqlite://")
	if !strings.HasPrefix(url, "file:") {
		url = "file:" + url
	}
	if strings.Contains(url, "_pragma=") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}

// SeedInstructor creates the default instructor if the table is empty,
// so a fresh deployment can log in with the bootstrap code.
func SeedInstructor(conn *gorm.DB, code string) (*models.Instructor, error) {
	var inst models.Instructor
	err := conn.First(&inst).Error
	if err == nil {
		return &inst, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	inst = models.Instructor{Name: "Coach", LoginCode: code}
	if err := conn.Create(&inst).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}
