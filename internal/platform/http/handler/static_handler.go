package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// apiPrefix marks paths that never fall through to static files.
const apiPrefix = "/api/"

// StaticHandler serves front-end assets from a directory on disk.
type StaticHandler struct {
	root  string
	index string
}

// NewStaticHandler serves files under root; "/" maps to index.
func NewStaticHandler(root, index string) *StaticHandler {
	if index == "" {
		index = "index.html"
	}
	return &StaticHandler{root: root, index: index}
}

// Serve writes the file matching the request path. Content-Type is inferred
// from the extension. Missing files, directories, and unknown API paths are 404.
func (h *StaticHandler) Serve(c *gin.Context) {
	reqPath := c.Request.URL.Path
	if strings.HasPrefix(reqPath, apiPrefix) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusNotFound)
		return
	}

	name, ok := h.resolve(reqPath)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(name)
}

// resolve maps a URL path to a regular file under root.
// Cleaning against "/" drops any ".." before the join, so the result stays inside root.
func (h *StaticHandler) resolve(urlPath string) (string, bool) {
	rel := path.Clean("/" + urlPath)
	if rel == "/" {
		rel = "/" + h.index
	}
	name := filepath.Join(h.root, filepath.FromSlash(rel))

	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return name, true
}
