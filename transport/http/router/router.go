package router

import (
	"venuequote/internal/handlers/export"
	"venuequote/internal/handlers/quote"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Quote  quote.Handler
	Export export.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Quote.Router(routerGroup)
		r.DomainHandlers.Export.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
