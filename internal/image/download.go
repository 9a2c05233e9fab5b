package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"

	"github.com/youruser/newscard/internal/util"
)

// Fetcher downloads remote backgrounds. Raw bytes are cached per URL for the
// configured TTL; every call decodes its own bitmap.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
	cache    *cache.Cache
}

func NewFetcher(timeout time.Duration, maxBytes int64, ttl time.Duration) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
		cache:    cache.New(ttl, 2*ttl),
	}
}

// Fetch downloads url (or reuses the cached payload) and decodes it.
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	body, err := f.fetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	return DecodeImage(body)
}

func (f *Fetcher) fetchBytes(ctx context.Context, url string) ([]byte, error) {
	log := logrus.WithField("url", url)
	if v, ok := f.cache.Get(url); ok {
		log.Debug("background cache hit")
		return v.([]byte), nil
	}
	log.Debug("background cache miss")

	body, err := util.GetBytes(ctx, f.client, url, f.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	f.cache.SetDefault(url, body)
	return body, nil
}

// DecodeImage decodes png, jpeg, gif, bmp, tiff or webp data, applying EXIF orientation.
func DecodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrBackgroundDecode)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackgroundDecode, err)
	}
	return img, nil
}

// DecodeFile reads and decodes an image staged on disk.
func DecodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackgroundDecode, err)
	}
	return DecodeImage(data)
}
