package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// BackupFile copies the store file into dir under a timestamped name.
// Intended to run between operations (at startup, before serving), so the
// copy is crash-consistent. Returns the backup path.
func BackupFile(src, dir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("hotel_backup_%s.db", time.Now().Format("20060102_150405"))
	dst := filepath.Join(dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		os.Remove(dst)
		return "", err
	}
	if err := out.Sync(); err != nil {
		return "", err
	}
	return dst, nil
}
