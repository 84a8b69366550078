package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hotel.db")
	require.NoError(t, os.WriteFile(src, []byte("store contents"), 0o644))

	backupDir := filepath.Join(dir, "backups")
	dst, err := BackupFile(src, backupDir)
	require.NoError(t, err)

	copied, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("store contents"), copied)

	assert.Equal(t, backupDir, filepath.Dir(dst))
	assert.Contains(t, filepath.Base(dst), "hotel_backup_")
}

func TestBackupFile_MissingSource(t *testing.T) {
	dir := t.TempDir()

	_, err := BackupFile(filepath.Join(dir, "absent.db"), filepath.Join(dir, "backups"))
	assert.Error(t, err)
}
