package webserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/librelibrary/librelibrary/internal/webserver/controller"
	"github.com/librelibrary/librelibrary/internal/webserver/controller/page"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func routes(app *fiber.App, controllers Controllers, supportedLanguages []string) {
	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(controllers.Session)

	langGroup := app.Group(fmt.Sprintf("/:lang<regex(%s)>", strings.Join(supportedLanguages, "|")), SetLanguage)

	langGroup.Get("/", controllers.Library.Index)

	langGroup.Post("/carousels/:name/previous", controllers.Carousels.Previous)
	langGroup.Post("/carousels/:name/next", controllers.Carousels.Next)

	langGroup.Get("/pages/:slug", page.Show)

	app.Get("/", func(c *fiber.Ctx) error {
		return controller.Root(c, supportedLanguages)
	})
}
