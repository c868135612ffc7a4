package carousel

import (
	"slices"

	"github.com/gosimple/slug"
	"github.com/librelibrary/librelibrary/internal/carousel"
	"github.com/librelibrary/librelibrary/internal/session"
)

type Config struct {
	PageSize int
	Genres   []string
	Session  session.Config
}

type Controller struct {
	config Config
	names  []string
}

func NewController(cfg Config) *Controller {
	names := []string{carousel.SearchResults}
	for _, genre := range cfg.Genres {
		names = append(names, slug.Make(genre))
	}

	return &Controller{
		config: cfg,
		names:  names,
	}
}

func (cc *Controller) known(name string) bool {
	return slices.Contains(cc.names, name)
}
