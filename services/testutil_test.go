package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hoteldesk-backend/config"
	"hoteldesk-backend/models"
)

// newTestDB opens a throwaway sqlite store with the production schema.
// A file-backed database (not :memory:) so concurrent transactions in the
// double-booking tests behave like the real store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hotel_test.db")
	db, err := gorm.Open(
		sqlite.Open("file:"+path+"?_busy_timeout=5000&_txlock=immediate"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedClient(t *testing.T, db *gorm.DB, name, phone string) *models.Client {
	t.Helper()

	client, err := NewClientService(db).Create(name, phone)
	require.NoError(t, err)
	return client
}

func seedRoom(t *testing.T, db *gorm.DB, number, roomType string, price float64) *models.Room {
	t.Helper()

	room, err := NewRoomService(db).Create(number, roomType, price)
	require.NoError(t, err)
	return room
}
