package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Jeffstark223/vvu-src-senate/internal/model"

	"github.com/gin-gonic/gin"
)

type NewsStore interface {
	GetNews() ([]model.NewsItem, error)
	SaveNews(item *model.NewsItem) error
}

type NewsHandler struct {
	repository NewsStore
}

func NewNewsHandler(repository NewsStore) *NewsHandler {
	return &NewsHandler{repository: repository}
}

type createNewsRequest struct {
	Title   string `json:"title" form:"title"`
	Teaser  string `json:"teaser" form:"teaser"`
	Content string `json:"content" form:"content"`
}

func toNewsResponse(n model.NewsItem) NewsResponse {
	return NewsResponse{
		ID:      n.ID,
		Title:   n.Title,
		Teaser:  n.Teaser,
		Content: n.Content,
		Date:    n.CreatedAt.Format(model.NewsDateLayout),
	}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	items, err := h.repository.GetNews()
	if err != nil {
		slog.Error("error fetching news", "request_id", requestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load news"})
		return
	}

	res := make([]NewsResponse, 0, len(items))
	for _, n := range items {
		res = append(res, toNewsResponse(n))
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) PostNews(c *gin.Context) {
	var req createNewsRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("invalid news request", "request_id", requestID(c), "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Title and content are required"})
		return
	}

	item := &model.NewsItem{
		Title:   req.Title,
		Teaser:  req.Teaser,
		Content: req.Content,
	}

	err := h.repository.SaveNews(item)
	if errors.Is(err, model.ErrInvalidNews) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Title and content are required"})
		return
	}
	if err != nil {
		slog.Error("error saving news", "request_id", requestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save news"})
		return
	}

	slog.Info("news item created", "request_id", requestID(c), "news_id", item.ID)
	c.JSON(http.StatusOK, CreateNewsResponse{
		Success: true,
		Message: "News item created",
		Item:    toNewsResponse(*item),
	})
}
