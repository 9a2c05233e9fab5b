package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// AssetLoader resolves static deployment assets such as the logo.
type AssetLoader interface {
	LoadAsset(name string) (image.Image, error)
}

// DirAssets loads assets from a directory on disk.
type DirAssets struct {
	Dir string
}

func (d DirAssets) LoadAsset(name string) (image.Image, error) {
	path := filepath.Join(d.Dir, filepath.Base(name))
	img, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetMissing, path)
		}
		return nil, fmt.Errorf("load asset %s: %w", path, err)
	}
	return img, nil
}
