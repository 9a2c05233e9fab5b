package api

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/youruser/newscard/internal/core"
	imagepkg "github.com/youruser/newscard/internal/image"
	"github.com/youruser/newscard/internal/util"
)

const mimePNG = "image/png"

var errNoBackground = errors.New("background file or background_url is required")

// BackgroundFetcher downloads and decodes a remote background.
type BackgroundFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

type Options struct {
	StaticDir    string
	TemplatesDir string
	UploadDir    string
}

type Handler struct {
	renderer *imagepkg.Renderer
	fetcher  BackgroundFetcher
	store    core.OutputStore
	opts     Options
}

func NewHandler(renderer *imagepkg.Renderer, fetcher BackgroundFetcher, store core.OutputStore, opts Options) *Handler {
	return &Handler{renderer: renderer, fetcher: fetcher, store: store, opts: opts}
}

type generateRequest struct {
	Category      string `form:"category" json:"category" binding:"required"`
	Title         string `form:"title" json:"title" binding:"required"`
	BackgroundURL string `form:"background_url" json:"background_url"`
	Fit           string `form:"fit" json:"fit"`
	Link          string `form:"link" json:"link"`
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generate composes a card from an uploaded file or a background URL. The PNG
// is streamed by default; JSON clients get it base64 encoded plus a stored copy.
func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and title are required"})
		return
	}

	bg, cleanup, err := h.loadBackground(c, req.BackgroundURL)
	defer cleanup()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	out, err := h.renderer.Render(imagepkg.RenderRequest{
		Category:   req.Category,
		Title:      req.Title,
		Background: bg,
		Fit:        imagepkg.ParseFitMode(req.Fit),
		Link:       req.Link,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	if !wantsJSON(c) {
		c.Data(http.StatusOK, mimePNG, out)
		return
	}

	id, err := h.store.Save(c.Request.Context(), out)
	if err != nil {
		logrus.WithError(err).Error("failed to persist output")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist output"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    id,
		"url":   "/outputs/" + id,
		"image": "data:" + mimePNG + ";base64," + base64.StdEncoding.EncodeToString(out),
	})
}

// loadBackground decodes the uploaded file, or fetches background_url. The
// returned cleanup removes any staged upload and is always safe to call.
func (h *Handler) loadBackground(c *gin.Context, backgroundURL string) (image.Image, func(), error) {
	noop := func() {}

	file, err := c.FormFile("background")
	if err == nil {
		staged := filepath.Join(h.opts.UploadDir, uuid.NewString()+strings.ToLower(filepath.Ext(file.Filename)))
		cleanup := func() { util.RemoveQuietly(staged) }
		if err := c.SaveUploadedFile(file, staged); err != nil {
			return nil, cleanup, fmt.Errorf("stage upload: %w", err)
		}
		img, err := imagepkg.DecodeFile(staged)
		return img, cleanup, err
	}

	if backgroundURL == "" {
		return nil, noop, errNoBackground
	}
	img, err := h.fetcher.Fetch(c.Request.Context(), backgroundURL)
	return img, noop, err
}

// output serves a previously persisted card.
func (h *Handler) output(c *gin.Context) {
	id := strings.TrimSuffix(c.Param("id"), ".png")
	data, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, mimePNG, data)
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if s := c.Query("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
			return
		}
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, mimePNG, b)
}

func wantsJSON(c *gin.Context) bool {
	if c.Query("format") == "json" {
		return true
	}
	return c.NegotiateFormat(mimePNG, gin.MIMEJSON) == gin.MIMEJSON
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errNoBackground):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrOutputNotFound):
		return http.StatusNotFound
	case errors.Is(err, imagepkg.ErrBackgroundDecode),
		errors.Is(err, imagepkg.ErrInvalidImageDimensions):
		return http.StatusUnprocessableEntity
	case errors.Is(err, util.ErrBadStatus),
		errors.Is(err, util.ErrPayloadTooLarge),
		isNetError(err):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func isNetError(err error) bool {
	var ne net.Error
	var ue *url.Error
	return errors.As(err, &ne) || errors.As(err, &ue)
}
