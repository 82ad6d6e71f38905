package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// InitDB membuka koneksi database dari environment.
// DB_DRIVER=sqlite dipakai untuk development lokal tanpa MySQL.
// TranslateError supaya pelanggaran unique constraint bisa dikenali
// sebagai gorm.ErrDuplicatedKey di layer service.
func InitDB() (*gorm.DB, error) {
	driver := getEnv("DB_DRIVER", "mysql")
	cfg := &gorm.Config{TranslateError: true}

	if driver == "sqlite" {
		return gorm.Open(sqlite.Open(getEnv("DB_PATH", "booking.db")), cfg)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "booking_restaurant"),
	)

	return gorm.Open(mysql.Open(dsn), cfg)
}
