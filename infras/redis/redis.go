package redis

import (
	"context"
	"net"
	"todoapp/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func New(config *config.Config) *goRedis.Client {
	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(config.Cache.Redis.Host, config.Cache.Redis.Port),
		Password: config.Cache.Redis.Password,
		DB:       config.Cache.Redis.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", config.Cache.Redis.DB).
		Str("host", config.Cache.Redis.Host).
		Str("port", config.Cache.Redis.Port).
		Msg("Connected to Redis")

	return client
}
