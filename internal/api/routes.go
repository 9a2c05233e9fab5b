package api

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.Static("/static", h.opts.StaticDir)
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(h.opts.TemplatesDir, "index.html"))
	})
	r.POST("/generate", h.generate)
	r.GET("/outputs/:id", h.output)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/qr", qrHandler)
	}
}
