package main

import "time"

type Config struct {
	Port              int           `env:"PORT" env-default:"3000" env-description:"Port to listen to for incoming requests"`
	SearchEndpoint    string        `env:"SEARCH_ENDPOINT" env-default:"https://openlibrary.org/search.json" env-description:"Book search API endpoint"`
	CoverHost         string        `env:"COVER_HOST" env-default:"covers.openlibrary.org" env-description:"Host serving book cover images"`
	PlaceholderCover  string        `env:"PLACEHOLDER_COVER" env-default:"https://via.placeholder.com/220x260?text=No+Cover" env-description:"Image shown for books without a cover"`
	FetchLimit        int           `env:"FETCH_LIMIT" env-default:"9" env-description:"Maximum number of books fetched per carousel"`
	PageSize          int           `env:"PAGE_SIZE" env-default:"3" env-description:"Number of cards visible at once in a carousel"`
	Genres            []string      `env:"GENRES" env-default:"action,history,fantasy" env-description:"Genres shown on the home page when there is no search"`
	SessionSecret     string        `env:"SESSION_SECRET" env-description:"Secret used to sign session cookies. A random one is generated on every start if empty"`
	SessionTimeout    time.Duration `env:"SESSION_TIMEOUT" env-default:"24h" env-description:"Lifetime of carousel positions"`
	UserAgent         string        `env:"USER_AGENT" env-default:"LibreLibrary/1.0 (+https://github.com/librelibrary/librelibrary)" env-description:"User agent sent to the search API"`
	RequestsPerSecond float64       `env:"REQUESTS_PER_SECOND" env-default:"5" env-description:"Maximum requests per second sent to the search API"`
	FetchTimeout      time.Duration `env:"FETCH_TIMEOUT" env-default:"10s" env-description:"Timeout for a single search API request"`
	Verbose           bool          `env:"VERBOSE" env-default:"false" env-description:"Log debug messages"`
}
