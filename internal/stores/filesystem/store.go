package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/youruser/newscard/internal/core"
)

type fsStore struct {
	basePath string
}

// NewStore creates a filesystem store rooted at basePath, creating the directory.
func NewStore(basePath string) (*fsStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &fsStore{basePath: basePath}, nil
}

func (s *fsStore) path(id string) string {
	return filepath.Join(s.basePath, id+".png")
}

func (s *fsStore) Save(ctx context.Context, data []byte) (string, error) {
	id := ulid.Make().String()
	filePath := s.path(id)
	log := logrus.WithFields(logrus.Fields{
		"output_id": id,
		"file_path": filePath,
	})

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		log.WithError(err).Error("Failed to save output")
		return "", err
	}
	log.Info("Output saved")
	return id, nil
}

func (s *fsStore) Get(ctx context.Context, id string) ([]byte, error) {
	// ids are ULIDs; anything else could escape basePath
	if _, err := ulid.ParseStrict(id); err != nil {
		return nil, core.ErrOutputNotFound
	}
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, core.ErrOutputNotFound
	}
	return data, err
}
