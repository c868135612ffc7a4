package view

import "github.com/gosimple/slug"

const HomeSlug = "home"

// Page is an entry of the sidebar. Only Home is implemented, the rest are placeholders.
type Page struct {
	Title string
	Slug  string
}

type Group struct {
	Name  string
	Pages []Page
}

var navigation = []Group{
	{
		Name:  "Library",
		Pages: pages("Home", "Reader"),
	},
	{
		Name:  "Tools",
		Pages: pages("Library Assistant", "Essay Writer", "Book Summarizer", "Translator", "Study Planner"),
	},
}

// Navigation returns the sidebar groups in display order
func Navigation() []Group {
	return navigation
}

func FindPage(pageSlug string) (Page, bool) {
	for _, group := range navigation {
		for _, page := range group.Pages {
			if page.Slug == pageSlug {
				return page, true
			}
		}
	}
	return Page{}, false
}

func pages(titles ...string) []Page {
	list := make([]Page, len(titles))
	for i, title := range titles {
		list[i] = Page{Title: title, Slug: slug.Make(title)}
	}
	return list
}
