package model

import (
	"errors"
	"time"
)

const (
	TeaserMaxLength = 100
	TeaserEllipsis  = "..."
	NewsDateLayout  = "2006-01-02"
)

var ErrInvalidNews = errors.New("news title and content are required")

type NewsItem struct {
	ID        int64
	Title     string
	Teaser    string
	Content   string
	CreatedAt time.Time
}

// DeriveTeaser returns the title cut to TeaserMaxLength runes, with an
// ellipsis appended only when something was cut.
func DeriveTeaser(title string) string {
	runes := []rune(title)
	if len(runes) <= TeaserMaxLength {
		return title
	}
	return string(runes[:TeaserMaxLength]) + TeaserEllipsis
}
