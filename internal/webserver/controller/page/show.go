package page

import (
	"github.com/gofiber/fiber/v2"
	"github.com/librelibrary/librelibrary/internal/webserver/view"
)

// Show renders the placeholder of a sidebar page that is not implemented yet
func Show(c *fiber.Ctx) error {
	pageSlug := c.Params("slug")
	if pageSlug == view.HomeSlug {
		return c.Redirect(view.LibraryURL(c.Params("lang"), ""))
	}

	p, ok := view.FindPage(pageSlug)
	if !ok {
		return fiber.ErrNotFound
	}

	return c.Render("page", fiber.Map{
		"Title":       p.Title + " | LibreLibrary",
		"PageTitle":   p.Title,
		"CurrentPage": p.Slug,
	}, "layout")
}
