package library

import (
	"context"

	"github.com/librelibrary/librelibrary/internal/card"
	"github.com/librelibrary/librelibrary/internal/carousel"
	"github.com/librelibrary/librelibrary/internal/openlibrary"
	"github.com/librelibrary/librelibrary/internal/session"
)

// Searcher looks up books in the remote catalogue
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]openlibrary.Book, error)
}

type Config struct {
	FetchLimit int
	PageSize   int
	Genres     []string
	Cards      card.Options
	Session    session.Config
}

// Section is one carousel of the library page
type Section struct {
	Heading  string
	Carousel carousel.View
	Failed   bool
}

type Controller struct {
	searcher Searcher
	config   Config
}

func NewController(searcher Searcher, cfg Config) *Controller {
	return &Controller{
		searcher: searcher,
		config:   cfg,
	}
}
