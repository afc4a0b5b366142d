// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the HTTP surface from the handler set and the
// middleware stack.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router. middleware may be nil, in which case the
// defaults apply.
func NewRouter(handler *Handler, middleware *Middleware) *Router {
	if middleware == nil {
		middleware = NewMiddleware(nil)
	}
	return &Router{
		handler:    handler,
		middleware: middleware,
	}
}

// Setup builds the chi route tree.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order to every route.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(Recoverer())
	r.Use(rt.middleware.CORS())
	r.Use(RequestLogging())

	// Health and metrics sit outside the API group: permissive rate
	// limits, no security headers that would upset scrapers.
	r.Group(func(r chi.Router) {
		r.Use(rt.middleware.RateLimitHealth())
		r.Get("/healthz", rt.handler.Health)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(PrometheusMetrics())

		r.Group(func(r chi.Router) {
			r.Use(rt.middleware.RateLimit())

			r.Post("/search", rt.handler.Search)
			r.Get("/timeslots", rt.handler.TimeSlots)

			r.Route("/users/{userID}", func(r chi.Router) {
				r.Route("/searches", func(r chi.Router) {
					r.Get("/", rt.handler.SavedSearchList)
					r.Post("/", rt.handler.SavedSearchCreate)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", rt.handler.SavedSearchGet)
						r.Put("/", rt.handler.SavedSearchUpdate)
						r.Delete("/", rt.handler.SavedSearchDelete)
						r.Post("/alert", rt.handler.SavedSearchAlert)
						r.Post("/execute", rt.handler.SavedSearchExecute)
					})
				})

				r.Route("/history", func(r chi.Router) {
					r.Get("/", rt.handler.HistoryList)
					r.Delete("/", rt.handler.HistoryClear)
				})
			})
		})

		// Snapshot uploads are large and infrequent; stricter limit.
		r.Group(func(r chi.Router) {
			r.Use(rt.middleware.RateLimitWrite())
			r.Put("/programmes", rt.handler.ReplaceProgrammes)
		})
	})

	return r
}
