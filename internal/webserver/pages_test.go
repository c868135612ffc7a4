package webserver_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestPages(t *testing.T) {
	app := bootstrapApp(t)

	var cases = []struct {
		name             string
		url              string
		expectedStatus   int
		expectedTitle    string
		expectedLocation string
	}{
		{"Placeholder page", "/en/pages/reader", http.StatusOK, "Reader", ""},
		{"Placeholder tool page", "/en/pages/library-assistant", http.StatusOK, "Library Assistant", ""},
		{"Placeholder page in spanish", "/es/pages/study-planner", http.StatusOK, "Planificador de estudio", ""},
		{"Home page goes to the library", "/es/pages/home", http.StatusFound, "", "/es"},
		{"Unknown page", "/en/pages/unknown", http.StatusNotFound, "", ""},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			response, doc := getRequest(t, app, tcase.url)
			if response.StatusCode != tcase.expectedStatus {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedStatus, response.StatusCode)
			}
			if location := response.Header.Get("Location"); location != tcase.expectedLocation {
				t.Errorf("Expected location '%s', got '%s'", tcase.expectedLocation, location)
			}
			if tcase.expectedTitle == "" {
				return
			}
			if title := strings.TrimSpace(doc.Find("main h1").Text()); title != tcase.expectedTitle {
				t.Errorf("Expected title '%s', got '%s'", tcase.expectedTitle, title)
			}
		})
	}
}

func TestSidebar(t *testing.T) {
	app := bootstrapApp(t)

	var cases = []struct {
		name           string
		url            string
		expectedActive string
	}{
		{"Library marks home as current", "/en", "home"},
		{"Placeholder page marks itself as current", "/en/pages/translator", "translator"},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			_, doc := getRequest(t, app, tcase.url)

			if links := doc.Find("#sidebar a[data-slug]").Length(); links != 7 {
				t.Errorf("Expected 7 navigation links, got %d", links)
			}

			active := doc.Find("#sidebar a[data-slug].active")
			if active.Length() != 1 {
				t.Fatalf("Expected one active link, got %d", active.Length())
			}
			if slug, _ := active.Attr("data-slug"); slug != tcase.expectedActive {
				t.Errorf("Expected active link '%s', got '%s'", tcase.expectedActive, slug)
			}
		})
	}
}

func TestLanguageSwitcherKeepsPath(t *testing.T) {
	app := bootstrapApp(t)

	_, doc := getRequest(t, app, "/en/pages/reader")

	links := map[string]string{}
	doc.Find("#sidebar a[hreflang]").Each(func(i int, s *goquery.Selection) {
		lang, _ := s.Attr("hreflang")
		href, _ := s.Attr("href")
		links[lang] = href
	})

	if links["es"] != "/es/pages/reader" {
		t.Errorf("Expected spanish link to be '/es/pages/reader', got '%s'", links["es"])
	}
	if links["en"] != "/en/pages/reader" {
		t.Errorf("Expected english link to be '/en/pages/reader', got '%s'", links["en"])
	}
}

func TestErrorPagesAreRendered(t *testing.T) {
	app := bootstrapApp(t)

	response, doc := getRequest(t, app, "/en/pages/unknown")
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("Wrong status code received, expected %d, got %d", http.StatusNotFound, response.StatusCode)
	}
	if doc.Find("#sidebar").Length() != 1 {
		t.Error("Expected error page to be rendered inside the layout")
	}
}
