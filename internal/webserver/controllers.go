package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/librelibrary/librelibrary/internal/session"
	"github.com/librelibrary/librelibrary/internal/webserver/controller/carousel"
	"github.com/librelibrary/librelibrary/internal/webserver/controller/library"
)

type Controllers struct {
	Library   *library.Controller
	Carousels *carousel.Controller
	Session   fiber.Handler
}

func SetupControllers(cfg Config, searcher library.Searcher) Controllers {
	sessionCfg := session.Config{
		Secret:  cfg.SessionSecret,
		Timeout: cfg.SessionTimeout,
	}

	libraryCfg := library.Config{
		FetchLimit: cfg.FetchLimit,
		PageSize:   cfg.PageSize,
		Genres:     cfg.Genres,
		Cards:      cfg.Cards,
		Session:    sessionCfg,
	}

	carouselsCfg := carousel.Config{
		PageSize: cfg.PageSize,
		Genres:   cfg.Genres,
		Session:  sessionCfg,
	}

	return Controllers{
		Library:   library.NewController(searcher, libraryCfg),
		Carousels: carousel.NewController(carouselsCfg),
		Session:   session.Middleware(cfg.SessionSecret),
	}
}
