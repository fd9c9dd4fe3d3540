package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Jeffstark223/vvu-src-senate/internal/model"
	"github.com/Jeffstark223/vvu-src-senate/pkg/storage"

	"github.com/gin-gonic/gin"
)

const (
	uploadField       = "pdf"
	pdfContentType    = "application/pdf"
	multipartOverhead = 1 << 20
)

type DocumentStore interface {
	Put(ctx context.Context, obj storage.Object, r io.Reader) error
	PublicURL(path string) string
}

type DocumentHandler struct {
	store    DocumentStore
	maxBytes int64
	now      func() time.Time
}

func NewDocumentHandler(store DocumentStore, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{store: store, maxBytes: maxBytes, now: time.Now}
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, ok := model.LookupDocument(c.Param("doc"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
		return
	}

	url := storage.VersionedURL(h.store.PublicURL(doc.ObjectPath), storage.VersionToken(h.now()))
	c.JSON(http.StatusOK, DocumentResponse{Success: true, URL: url})
}

func (h *DocumentHandler) PostUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	file, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: h.tooLargeMessage()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		return
	}

	if file.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: h.tooLargeMessage()})
		return
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Only PDF files are allowed"})
		return
	}

	doc, ok := model.ClassifyDocumentFilename(file.Filename)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Filename must contain 'handbook' or 'student' (handbook), or 'constitution' or 'src' (constitution)",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		slog.Error("error opening uploaded file", "request_id", requestID(c), "filename", file.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upload document"})
		return
	}
	defer src.Close()

	obj := storage.Object{Path: doc.ObjectPath, Size: file.Size, ContentType: pdfContentType}
	if err := h.store.Put(c.Request.Context(), obj, src); err != nil {
		slog.Error("error uploading document", "request_id", requestID(c), "document", doc.Name, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upload document"})
		return
	}

	slog.Info("document uploaded", "request_id", requestID(c), "document", doc.Name, "size", file.Size)
	c.JSON(http.StatusOK, UploadResponse{
		Success: true,
		Message: fmt.Sprintf("The %s was updated successfully", doc.Name),
		URL:     h.store.PublicURL(doc.ObjectPath),
		Version: storage.VersionToken(h.now()),
	})
}

func (h *DocumentHandler) tooLargeMessage() string {
	if h.maxBytes < 1<<20 {
		return fmt.Sprintf("File exceeds the %d byte limit", h.maxBytes)
	}
	return fmt.Sprintf("File exceeds the %d MB limit", h.maxBytes>>20)
}
