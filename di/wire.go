//go:build wireinject
// +build wireinject

package di

import (
	"venuequote/config"
	"venuequote/infras/otel"
	"venuequote/infras/rates"
	"venuequote/infras/redis"
	"venuequote/shared/cache"
	"venuequote/transport/http"
	"venuequote/transport/http/middleware"
	"venuequote/transport/http/router"

	pricingService "venuequote/internal/domains/pricing/service"
	quoteRepository "venuequote/internal/domains/quote/repository"
	quoteService "venuequote/internal/domains/quote/service"

	exportService "venuequote/internal/domains/export/service"

	exportHandler "venuequote/internal/handlers/export"
	quoteHandler "venuequote/internal/handlers/quote"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	rates.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var quoteDomain = wire.NewSet(
	quoteRepository.New,
	quoteService.New,
)

var exportDomain = wire.NewSet(
	exportService.New,
)

var domains = wire.NewSet(
	pricingDomain,
	quoteDomain,
	exportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	quoteHandler.New,
	exportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
