package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "librelibrary_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "route", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "librelibrary_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	FetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "librelibrary_search_fetches_total",
		Help: "Total number of book search API calls by outcome",
	}, []string{"outcome"})

	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "librelibrary_search_fetch_duration_seconds",
		Help:    "Duration of book search API calls in seconds",
		Buckets: prometheus.DefBuckets,
	})

	CarouselTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "librelibrary_carousel_transitions_total",
		Help: "Carousel previous/next requests by direction and whether the offset moved",
	}, []string{"direction", "moved"})
)
