//go:build wireinject
// +build wireinject

package di

import (
	"todoapp/config"
	"todoapp/infras/jwt"
	"todoapp/infras/otel"
	"todoapp/infras/postgres"
	"todoapp/infras/redis"
	"todoapp/shared/cache"
	"todoapp/transport/http"
	"todoapp/transport/http/middleware"
	"todoapp/transport/http/router"

	authService "todoapp/internal/domains/auth/service"
	todoRepository "todoapp/internal/domains/todo/repository"
	todoService "todoapp/internal/domains/todo/service"
	userRepository "todoapp/internal/domains/user/repository"

	authHandler "todoapp/internal/handlers/auth"
	rootHandler "todoapp/internal/handlers/root"
	todoHandler "todoapp/internal/handlers/todo"
	userHandler "todoapp/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	todoDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	rootHandler.New,
	authHandler.New,
	userHandler.New,
	todoHandler.New,
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
