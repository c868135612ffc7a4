// Package card turns search results into the fixed layout book cards shown in carousels.
package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/librelibrary/librelibrary/internal/openlibrary"
)

const (
	MaxTextLength = 30

	DefaultCoverHost   = "covers.openlibrary.org"
	DefaultPlaceholder = "https://via.placeholder.com/220x260?text=No+Cover"

	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"
	UnknownYear   = "N/A"
)

type Action struct {
	ID    string
	Label string
	Icon  string
}

type Card struct {
	Title    string
	Authors  string
	Year     string
	CoverURL string
	Actions  []Action
}

type Options struct {
	CoverHost   string
	Placeholder string
}

// New builds the card for book. Text is kept as received, escaping is left to the views. keyPrefix must be unique among the cards of a page,
// as it identifies the card controls.
func New(book openlibrary.Book, keyPrefix string, opts Options) Card {
	return Card{
		Title:    text(book.Title, UnknownTitle),
		Authors:  text(strings.Join(book.Authors, ", "), UnknownAuthor),
		Year:     year(book.FirstPublishYear),
		CoverURL: CoverURL(book.CoverID, opts),
		Actions: []Action{
			{ID: keyPrefix + "_details", Label: "Details", Icon: "🔍"},
			{ID: keyPrefix + "_read", Label: "Read", Icon: "📖"},
			{ID: keyPrefix + "_download", Label: "Download", Icon: "⬇️"},
		},
	}
}

// CoverURL returns the medium size cover image of coverID, or the placeholder
// if there is none.
func CoverURL(coverID int, opts Options) string {
	if coverID == 0 {
		if opts.Placeholder == "" {
			return DefaultPlaceholder
		}
		return opts.Placeholder
	}
	host := opts.CoverHost
	if host == "" {
		host = DefaultCoverHost
	}
	return fmt.Sprintf("https://%s/b/id/%d-M.jpg", host, coverID)
}

func text(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return Truncate(value, MaxTextLength)
}

func year(value int) string {
	if value == 0 {
		return UnknownYear
	}
	return strconv.Itoa(value)
}
