package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/profileranker/backend/models"
)

// StaticHandler serves the built front-end. Unknown page paths fall back to
// index.html so client-side routes survive a reload.
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a handler rooted at dir
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Serve is meant for router.NoRoute
func (h *StaticHandler) Serve(c *gin.Context) {
	urlPath := path.Clean("/" + c.Request.URL.Path)

	if strings.HasPrefix(urlPath, "/api/") || urlPath == "/api" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusMethodNotAllowed)
		return
	}

	file := filepath.Join(h.dir, filepath.FromSlash(urlPath))
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}

	c.File(filepath.Join(h.dir, "index.html"))
}
