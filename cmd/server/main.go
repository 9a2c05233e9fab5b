package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/youruser/newscard/internal/api"
	"github.com/youruser/newscard/internal/config"
	imagepkg "github.com/youruser/newscard/internal/image"
	"github.com/youruser/newscard/internal/stores"
	"github.com/youruser/newscard/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// fonts are registered once, before any render
	font, fallback, err := imagepkg.LoadFontOrDefault(cfg.FontPath)
	if err != nil {
		logrus.Fatalf("Failed to load font: %v", err)
	}
	if fallback {
		logrus.WithField("font_path", cfg.FontPath).Warn("Font not found, using embedded Go Bold")
	}

	renderer, err := imagepkg.NewRenderer(font, imagepkg.DirAssets{Dir: cfg.StaticDir}, cfg.LogoName)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := util.EnsureDir(cfg.UploadDir); err != nil {
		logrus.Fatalf("Failed to create upload directory: %v", err)
	}

	store, err := stores.GetStore(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialise storage: %v", err)
	}

	fetcher := imagepkg.NewFetcher(cfg.FetchTimeout, cfg.FetchMaxBytes, cfg.CacheTTL)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(api.Logger(), gin.Recovery(), api.CORS(cfg.CORSOrigins))
	api.RegisterRoutes(r, api.NewHandler(renderer, fetcher, store, api.Options{
		StaticDir:    cfg.StaticDir,
		TemplatesDir: cfg.TemplatesDir,
		UploadDir:    cfg.UploadDir,
	}))

	logrus.WithField("addr", "http://localhost:"+cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}
