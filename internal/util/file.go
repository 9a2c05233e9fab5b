package util

import (
	"errors"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// RemoveQuietly deletes a staged file, logging anything but a missing file.
func RemoveQuietly(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("path", path).WithError(err).Warn("failed to remove temporary file")
	}
}
