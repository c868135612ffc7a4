package webserver_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/librelibrary/librelibrary/internal/carousel"
	"github.com/librelibrary/librelibrary/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarouselNavigation(t *testing.T) {
	app := bootstrapApp(t)

	// Forward to the second page of the fantasy genre
	response := postRequest(t, app, "/en/carousels/fantasy/next", url.Values{"total": {"9"}})
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	assert.Equal(t, "/en", response.Header.Get("Location"))
	cookie := sessionCookie(response)
	require.NotNil(t, cookie)

	_, doc := getRequest(t, app, "/en", cookie)
	fantasy := carouselSection(doc, "fantasy")
	assert.Equal(t, 3, fantasy.Find(".book-card").Length())
	assert.Equal(t, "Fantasy Book 4", fantasy.Find(".book-title").First().Text())
	assert.Equal(t, 1, fantasy.Find(".carousel-previous").Length())
	assert.Equal(t, 1, fantasy.Find(".carousel-next").Length())
	key, _ := fantasy.Find(".book-action").First().Attr("data-key")
	assert.Equal(t, "works-ol1004w_3_details", key)
	assert.Equal(t, "Showing 4-6 of 9", fantasy.Find(".carousel-range").Text())

	// Other carousels stay where they were
	assert.Equal(t, "Action & Adventure Stories", carouselSection(doc, "action").Find(".book-title").First().Text())

	// Forward to the last page, where there is no next button
	response = postRequest(t, app, "/en/carousels/fantasy/next", url.Values{"total": {"9"}}, cookie)
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	cookie = sessionCookie(response)
	require.NotNil(t, cookie)

	_, doc = getRequest(t, app, "/en", cookie)
	fantasy = carouselSection(doc, "fantasy")
	assert.Equal(t, "Fantasy Book 7", fantasy.Find(".book-title").First().Text())
	assert.Equal(t, 0, fantasy.Find(".carousel-next").Length())

	// Next at the end does not move nor touch the session
	response = postRequest(t, app, "/en/carousels/fantasy/next", url.Values{"total": {"9"}}, cookie)
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	assert.Nil(t, sessionCookie(response))

	// Back to the second page
	response = postRequest(t, app, "/en/carousels/fantasy/previous", url.Values{"total": {"9"}}, cookie)
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	cookie = sessionCookie(response)
	require.NotNil(t, cookie)

	_, doc = getRequest(t, app, "/en", cookie)
	assert.Equal(t, "Fantasy Book 4", carouselSection(doc, "fantasy").Find(".book-title").First().Text())
}

func TestCarouselPreviousAtStart(t *testing.T) {
	app := bootstrapApp(t)

	response := postRequest(t, app, "/en/carousels/fantasy/previous", url.Values{"total": {"9"}})
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	assert.Nil(t, sessionCookie(response))
}

func TestCarouselTransitions(t *testing.T) {
	app := bootstrapApp(t)

	var cases = []struct {
		name             string
		url              string
		data             url.Values
		expectedStatus   int
		expectedLocation string
		expectedCookie   bool
	}{
		{"Next on a carousel with more books", "/en/carousels/action/next", url.Values{"total": {"5"}}, http.StatusSeeOther, "/en", true},
		{"Next on a carousel that fits in a page", "/en/carousels/action/next", url.Values{"total": {"2"}}, http.StatusSeeOther, "/en", false},
		{"Next without total does not move", "/en/carousels/action/next", url.Values{}, http.StatusSeeOther, "/en", false},
		{"Next with an invalid total does not move", "/en/carousels/action/next", url.Values{"total": {"many"}}, http.StatusSeeOther, "/en", false},
		{"Next with a negative total does not move", "/en/carousels/action/next", url.Values{"total": {"-9"}}, http.StatusSeeOther, "/en", false},
		{"Search results go back to the search", "/es/carousels/search_results/next", url.Values{"total": {"4"}, "search": {"dune"}}, http.StatusSeeOther, "/es?search=dune", true},
		{"Unknown carousel", "/en/carousels/romance/next", url.Values{"total": {"9"}}, http.StatusNotFound, "", false},
		{"Unknown carousel going back", "/en/carousels/romance/previous", url.Values{"total": {"9"}}, http.StatusNotFound, "", false},
		{"Unsupported language", "/xx/carousels/action/next", url.Values{"total": {"9"}}, http.StatusNotFound, "", false},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			response := postRequest(t, app, tcase.url, tcase.data)
			assert.Equal(t, tcase.expectedStatus, response.StatusCode)
			assert.Equal(t, tcase.expectedLocation, response.Header.Get("Location"))
			assert.Equal(t, tcase.expectedCookie, sessionCookie(response) != nil)
		})
	}
}

func TestSearchCarouselNavigation(t *testing.T) {
	app := bootstrapApp(t)

	response := postRequest(t, app, "/en/carousels/search_results/next", url.Values{"total": {"4"}, "search": {"dune"}})
	require.Equal(t, http.StatusSeeOther, response.StatusCode)
	cookie := sessionCookie(response)
	require.NotNil(t, cookie)

	_, doc := getRequest(t, app, response.Header.Get("Location"), cookie)
	results := carouselSection(doc, "search_results")
	assert.Equal(t, 1, results.Find(".book-card").Length())
	assert.Equal(t, "The Road to Dune: New Stories,...", results.Find(".book-title").Text())
	assert.Equal(t, "Showing 4-4 of 4", results.Find(".carousel-range").Text())
	assert.Equal(t, 1, results.Find(".carousel-previous").Length())
	assert.Equal(t, 0, results.Find(".carousel-next").Length())
}

func TestOffsetIsClampedWhenListShrinks(t *testing.T) {
	app := bootstrapApp(t)

	var cases = []struct {
		name               string
		offsets            carousel.Offsets
		url                string
		carousel           string
		expectedFirstTitle string
		expectedCookie     bool
	}{
		{"Offset past the end moves to the last page", carousel.Offsets{carousel.SearchResults: 7}, "/en?search=dune", carousel.SearchResults, "The Road to Dune: New Stories,...", true},
		{"Offset past a short list goes back to the start", carousel.Offsets{"action": 6}, "/en", "action", "Action & Adventure Stories", true},
		{"Offset not aligned to a page is aligned", carousel.Offsets{"fantasy": 4}, "/en", "fantasy", "Fantasy Book 4", true},
		{"Offset inside the list is kept", carousel.Offsets{"fantasy": 3}, "/en", "fantasy", "Fantasy Book 4", false},
		{"Offset of an empty list goes back to the start", carousel.Offsets{carousel.SearchResults: 3}, "/en?search=nothing", carousel.SearchResults, "", true},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			token, err := session.GenerateToken(session.Session{Offsets: tcase.offsets}, time.Now().Add(time.Hour), secret)
			require.NoError(t, err)

			response, doc := getRequest(t, app, tcase.url, &http.Cookie{Name: session.CookieName, Value: token})
			require.Equal(t, http.StatusOK, response.StatusCode)

			assert.Equal(t, tcase.expectedFirstTitle, carouselSection(doc, tcase.carousel).Find(".book-title").First().Text())
			assert.Equal(t, tcase.expectedCookie, sessionCookie(response) != nil)
		})
	}
}

func TestFailedFetchKeepsOffset(t *testing.T) {
	app := bootstrapApp(t)

	token, err := session.GenerateToken(session.Session{Offsets: carousel.Offsets{carousel.SearchResults: 3}}, time.Now().Add(time.Hour), secret)
	require.NoError(t, err)

	response, doc := getRequest(t, app, "/en?search=unavailable", &http.Cookie{Name: session.CookieName, Value: token})
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, 1, carouselSection(doc, carousel.SearchResults).Find(".notice").Length())
	assert.Nil(t, sessionCookie(response))
}

func TestTamperedSessionIsIgnored(t *testing.T) {
	app := bootstrapApp(t)

	token, err := session.GenerateToken(session.Session{Offsets: carousel.Offsets{"fantasy": 3}}, time.Now().Add(time.Hour), []byte("other-secret"))
	require.NoError(t, err)

	response, doc := getRequest(t, app, "/en", &http.Cookie{Name: session.CookieName, Value: token})
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "Fantasy Book 1", carouselSection(doc, "fantasy").Find(".book-title").First().Text())
}
