package webserver

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/librelibrary/librelibrary/internal/metrics"
	"github.com/librelibrary/librelibrary/internal/webserver/view"
	log "github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

// RequestLogger tags every request with an ID, then logs and measures it once served
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDHeader, requestID)
		c.Locals("RequestID", requestID)

		err := c.Next()
		if err != nil {
			// Let the error handler write the response so its status gets logged
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		route := c.Route().Path
		took := time.Since(start)

		metrics.HttpRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(route).Observe(took.Seconds())

		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"took":       took,
		}).Info("http.request")

		return nil
	}
}

// SetDefaults sets the values every view expects, so that pages rendered
// outside the language routes (e.g. errors) can still draw the layout
func SetDefaults(version string, supportedLanguages []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("Lang", defaultLanguage)
		c.Locals("Version", version)
		c.Locals("Navigation", view.Navigation())
		c.Locals("SupportedLanguages", supportedLanguages)
		c.Locals("CurrentPage", "")
		c.Locals("PathMinusLang", "")
		return c.Next()
	}
}

// SetLanguage exposes the language of the request and the current path without
// it, so views can link to the same page in another language
func SetLanguage(c *fiber.Ctx) error {
	lang := c.Params("lang")
	pathMinusLang := c.Path()[len(lang)+1:]
	query := string(c.Request().URI().QueryString())
	if query != "" {
		pathMinusLang = pathMinusLang + "?" + query
	}
	c.Locals("Lang", lang)
	c.Locals("PathMinusLang", pathMinusLang)
	return c.Next()
}
