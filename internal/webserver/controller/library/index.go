package library

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/librelibrary/librelibrary/internal/card"
	"github.com/librelibrary/librelibrary/internal/carousel"
	"github.com/librelibrary/librelibrary/internal/result"
	"github.com/librelibrary/librelibrary/internal/session"
	"github.com/librelibrary/librelibrary/internal/webserver/view"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Index renders the library page: a carousel of search results if there is a
// query, or one carousel per genre otherwise.
func (l *Controller) Index(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	search := strings.TrimSpace(c.Query("search"))

	var sections []Section
	if search != "" {
		sections = append(sections, l.section(c, sess, carousel.SearchResults, search, ""))
	} else {
		title := cases.Title(language.Und)
		for _, genre := range l.config.Genres {
			sections = append(sections, l.section(c, sess, slug.Make(genre), genre, "🔥 "+title.String(genre)))
		}
	}

	for _, section := range sections {
		if section.Carousel.Reconciled {
			if err := session.Save(c, sess, l.config.Session); err != nil {
				log.WithError(err).Error("couldn't save session")
			}
			break
		}
	}

	return c.Render("index", fiber.Map{
		"Title":       "LibreLibrary",
		"Search":      search,
		"Sections":    sections,
		"CurrentPage": view.HomeSlug,
	}, "layout")
}

func (l *Controller) section(c *fiber.Ctx, sess session.Session, name, query, heading string) Section {
	books, err := l.searcher.Search(c.UserContext(), query, l.config.FetchLimit)
	if err != nil {
		log.WithFields(log.Fields{
			"request_id": c.Locals("RequestID"),
			"carousel":   name,
			"query":      query,
		}).WithError(err).Error("couldn't fetch books")

		// Keep the stored offset, the list may be back on the next request
		return Section{
			Heading:  heading,
			Carousel: carousel.View{Name: name, Paginated: result.NewPaginated(l.config.PageSize, 1, 0, []card.Card{})},
			Failed:   true,
		}
	}

	return Section{
		Heading:  heading,
		Carousel: sess.Offsets.Render(name, books, l.config.PageSize, l.config.Cards),
	}
}
