package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database configured through environment variables.
// DB_DRIVER selects mysql (default) or sqlite; sqlite reads DB_PATH and is
// mainly for local development. TranslateError is enabled so unique-index
// and foreign-key violations come back as gorm.ErrDuplicatedKey /
// gorm.ErrForeignKeyViolated regardless of driver.
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "store.db"
		}
		return gorm.Open(sqlite.Open(path), cfg)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASS"),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "store"),
	)
	return gorm.Open(mysql.Open(dsn), cfg)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
