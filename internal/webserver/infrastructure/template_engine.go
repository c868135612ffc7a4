package infrastructure

import (
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
	"github.com/gosimple/slug"
	"github.com/librelibrary/librelibrary/internal/i18n"
	log "github.com/sirupsen/logrus"
)

func TemplateEngine(viewsFS fs.FS, printers *i18n.Printers) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...any) template.HTML {
		for i, value := range values {
			if s, ok := value.(string); ok {
				values[i] = template.HTMLEscapeString(s)
			}
		}
		return template.HTML(printers.T(lang, key, values...))
	})

	engine.AddFunc("dict", func(values ...any) map[string]any {
		if len(values)%2 != 0 {
			log.Warn("invalid dict call")
			return nil
		}
		dict := make(map[string]any, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				log.Warn("dict keys must be strings")
				return nil
			}
			dict[key] = values[i+1]
		}
		return dict
	})

	engine.AddFunc("uppercase", func(text string) string {
		return strings.ToUpper(text)
	})

	engine.AddFunc("slugify", func(text string) string {
		return slug.Make(text)
	})

	return engine, nil
}
