package i18n

import (
	"io/fs"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printers holds one message printer per language found in the translations folder.
type Printers struct {
	printers map[string]*message.Printer
	fallback string
}

func NewPrinters(dir fs.FS, fallbackLang string) (*Printers, error) {
	cat, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}

	printers := make(map[string]*message.Printer)
	for _, tag := range cat.Languages() {
		base, _ := tag.Base()
		printers[base.String()] = message.NewPrinter(tag, message.Catalog(cat))
	}
	if _, ok := printers[fallbackLang]; !ok {
		printers[fallbackLang] = message.NewPrinter(language.MustParse(fallbackLang), message.Catalog(cat))
	}

	return &Printers{printers: printers, fallback: fallbackLang}, nil
}

// T translates key into lang, falling back to the default language if lang is not supported.
func (p *Printers) T(lang, key string, values ...any) string {
	printer, ok := p.printers[lang]
	if !ok {
		printer = p.printers[p.fallback]
	}
	return printer.Sprintf(key, values...)
}

func (p *Printers) Languages() []string {
	langs := make([]string, 0, len(p.printers))
	for lang := range p.printers {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
