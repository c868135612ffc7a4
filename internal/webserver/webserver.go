package webserver

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/librelibrary/librelibrary/internal/card"
	"github.com/librelibrary/librelibrary/internal/i18n"
	"github.com/librelibrary/librelibrary/internal/webserver/controller"
	"github.com/librelibrary/librelibrary/internal/webserver/infrastructure"
	"github.com/librelibrary/librelibrary/internal/webserver/view"
	log "github.com/sirupsen/logrus"
)

const defaultLanguage = "en"

var (
	//go:embed embedded
	embedded embed.FS

	cssFS          fs.FS
	viewsFS        fs.FS
	translationsFS fs.FS
)

type Config struct {
	Version        string
	SessionSecret  []byte
	SessionTimeout time.Duration
	FetchLimit     int
	PageSize       int
	Genres         []string
	Cards          card.Options
}

func init() {
	var err error

	cssFS, err = fs.Sub(embedded, "embedded/css")
	if err != nil {
		log.Fatal(err)
	}

	viewsFS, err = fs.Sub(embedded, "embedded/views")
	if err != nil {
		log.Fatal(err)
	}

	translationsFS, err = fs.Sub(embedded, "embedded/translations")
	if err != nil {
		log.Fatal(err)
	}
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	printers, err := i18n.NewPrinters(translationsFS, defaultLanguage)
	if err != nil {
		log.Fatal(err)
	}
	supportedLanguages := printers.Languages()

	engine, err := infrastructure.TemplateEngine(viewsFS, printers)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		PassLocalsToViews:     true,
		DisableStartupMessage: true,
		AppName:               cfg.Version,
		ErrorHandler:          errorHandler(supportedLanguages),
	})

	app.Use(RequestLogger())
	app.Use(recover.New())
	app.Use(SetDefaults(cfg.Version, supportedLanguages))

	routes(app, controllers, supportedLanguages)
	return app
}

func errorHandler(supportedLanguages []string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
		if code == fiber.StatusInternalServerError {
			log.WithField("request_id", c.Locals("RequestID")).WithError(err).Error("request failed")
		}

		// Send custom error page
		err = c.Status(code).Render(
			fmt.Sprintf("errors/%d", code),
			fiber.Map{
				"Lang":               controller.ChooseBestLanguage(c, supportedLanguages),
				"Title":              "LibreLibrary",
				"Version":            c.App().Config().AppName,
				"Navigation":         view.Navigation(),
				"SupportedLanguages": supportedLanguages,
				"CurrentPage":        "",
				"PathMinusLang":      "",
			},
			"layout")

		if err != nil {
			// In case the Render fails
			return c.Status(code).SendString(fiber.NewError(code).Message)
		}

		return nil
	}
}
