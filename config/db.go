package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hoteldesk-backend/models"
)

// mysqlDSNFromURL converts a mysql:// URL into a go-sql-driver DSN.
func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func openDialector(cfg *Config) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Database.Driver)) {
	case "", "sqlite", "sqlite3":
		// _txlock=immediate takes the write lock at BEGIN so two booking
		// transactions serialize instead of deadlocking on lock upgrade;
		// _busy_timeout keeps the waiter queued while the winner commits.
		return sqlite.Open(fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate", cfg.Database.Path)), nil
	case "mysql":
		dsn := strings.TrimSpace(cfg.Database.DSN)
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required for the mysql driver")
		}
		if strings.HasPrefix(dsn, "mysql://") {
			converted, err := mysqlDSNFromURL(dsn)
			if err != nil {
				return nil, err
			}
			dsn = converted
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Connect opens the store, runs migrations and seeds the default admin.
// The returned handle is passed explicitly to every service.
func Connect(cfg *Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	SeedDatabase(db)
	return db, nil
}

// Migrate applies the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Room{},
		&models.Booking{},
	)
}

// SeedDatabase ensures a default admin exists so a fresh install is usable.
func SeedDatabase(db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Msg("failed to hash default admin password")
		return
	}

	admin := models.User{
		Username: "admin",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Warn().Err(err).Msg("failed to create default admin")
		return
	}
	log.Info().Msg("default admin seeded")
}
