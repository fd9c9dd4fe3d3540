package repository

import (
	"sync"
	"time"

	"github.com/Jeffstark223/vvu-src-senate/internal/model"
)

// NewsRepository keeps posted news in memory. Everything is lost on restart.
type NewsRepository struct {
	mu     sync.RWMutex
	items  []model.NewsItem
	lastID int64
	now    func() time.Time
}

func NewNewsRepository() *NewsRepository {
	return &NewsRepository{now: time.Now}
}

// GetNews returns every item, most recently created first.
func (r *NewsRepository) GetNews() ([]model.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.NewsItem, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		items = append(items, r.items[i])
	}
	return items, nil
}

// SaveNews assigns the next id and creation time to item and appends it.
// An empty teaser is derived from the title.
func (r *NewsRepository) SaveNews(item *model.NewsItem) error {
	if item.Title == "" || item.Content == "" {
		return model.ErrInvalidNews
	}
	if item.Teaser == "" {
		item.Teaser = model.DeriveTeaser(item.Title)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	item.ID = r.lastID
	item.CreatedAt = r.now()
	r.items = append(r.items, *item)
	return nil
}
