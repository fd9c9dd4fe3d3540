package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const indexFile = "index.html"

// SiteHandler serves the public site and the admin page from disk.
type SiteHandler struct {
	publicDir string
	adminPage string
}

func NewSiteHandler(publicDir, adminPage string) *SiteHandler {
	return &SiteHandler{publicDir: publicDir, adminPage: adminPage}
}

func (h *SiteHandler) GetIndex(c *gin.Context) {
	c.File(filepath.Join(h.publicDir, indexFile))
}

func (h *SiteHandler) GetAdminPage(c *gin.Context) {
	c.File(h.adminPage)
}

// Fallback handles every request no route matched. GET requests get the
// public file at that path, or index.html so client-side links resolve.
func (h *SiteHandler) Fallback(c *gin.Context) {
	method := c.Request.Method
	if method != http.MethodGet && method != http.MethodHead {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	urlPath := c.Request.URL.Path
	if urlPath == "/api" || strings.HasPrefix(urlPath, "/api/") {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	if name, ok := h.publicFile(urlPath); ok {
		c.File(name)
		return
	}
	h.GetIndex(c)
}

// publicFile maps a request path onto a regular file inside publicDir.
func (h *SiteHandler) publicFile(urlPath string) (string, bool) {
	name := filepath.Join(h.publicDir, filepath.FromSlash(path.Clean("/"+urlPath)))

	info, err := os.Stat(name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return name, true
}
