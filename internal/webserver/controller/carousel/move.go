package carousel

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/librelibrary/librelibrary/internal/metrics"
	"github.com/librelibrary/librelibrary/internal/session"
	"github.com/librelibrary/librelibrary/internal/webserver/view"
	log "github.com/sirupsen/logrus"
)

// Previous moves a carousel back one page and sends the user back to the library
func (cc *Controller) Previous(c *fiber.Ctx) error {
	return cc.move(c, "previous", func(s session.Session, name string, _ int) bool {
		return s.Offsets.Previous(name, cc.config.PageSize)
	})
}

// Next moves a carousel forward one page, as long as there are books left
// in the list it was rendered with.
func (cc *Controller) Next(c *fiber.Ctx) error {
	return cc.move(c, "next", func(s session.Session, name string, total int) bool {
		return s.Offsets.Next(name, cc.config.PageSize, total)
	})
}

func (cc *Controller) move(c *fiber.Ctx, direction string, transition func(s session.Session, name string, total int) bool) error {
	name := c.Params("name")
	if !cc.known(name) {
		return fiber.ErrNotFound
	}

	total, err := strconv.Atoi(c.FormValue("total"))
	if err != nil || total < 0 {
		total = 0
	}

	sess := session.FromContext(c)
	moved := transition(sess, name, total)
	metrics.CarouselTransitionsTotal.WithLabelValues(direction, strconv.FormatBool(moved)).Inc()

	if moved {
		if err := session.Save(c, sess, cc.config.Session); err != nil {
			log.WithError(err).Error("couldn't save session")
			return fiber.ErrInternalServerError
		}
	}

	return c.Redirect(view.LibraryURL(c.Params("lang"), c.FormValue("search")), fiber.StatusSeeOther)
}
