package openlibrary

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gosimple/slug"
)

// NewMockServer serves search.json responses from fixturePath. A query is answered
// with search-<slugified query>.json, or search-no-results.json when there is no
// such fixture. The query "unavailable" gets a 503.
func NewMockServer(t *testing.T, fixturePath string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/search.json") {
			t.Errorf("Expected to request '/search.json', got: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		query := slug.Make(r.URL.Query().Get("q"))
		if query == "unavailable" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		returnResponse(t, fmt.Sprintf("search-%s", query), w, fixturePath)
	}))
}

func returnResponse(t *testing.T, fixture string, w http.ResponseWriter, fixturePath string) {
	filePath := fmt.Sprintf("%s/%s.json", fixturePath, fixture)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		filePath = fmt.Sprintf("%s/search-no-results.json", fixturePath)
	}
	contents, err := os.ReadFile(filePath)
	if err != nil {
		t.Errorf("Couldn't read contents of %s", filePath)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(contents); err != nil {
		t.Errorf("Couldn't write contents of %s", filePath)
	}
}
