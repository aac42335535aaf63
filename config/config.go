package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds all runtime configuration. Every value has a development
// default; production deployments are expected to override at least the JWT
// secret and the database credentials.
type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"debug"`
		Port     string `envconfig:"PORT"      default:"8000"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"todoapp"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Accept,Authorization,Content-Type"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"*"`
			Enable           bool     `envconfig:"ENABLE"            default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	JWT struct {
		// AccessSecret signs every issued token; rotating it invalidates all
		// outstanding tokens.
		AccessSecret    string `envconfig:"ACCESS_SECRET"     default:"your-secret-key-change-this-in-production"`
		AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN" default:"30"`
	} `envconfig:"JWT"`

	Cache struct {
		Redis struct {
			Host     string `envconfig:"HOST"     default:"localhost"`
			Port     string `envconfig:"PORT"     default:"6379"`
			Password string `envconfig:"PASSWORD" default:""`
			DB       int    `envconfig:"DB"       default:"0"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			Read           DBNode `envconfig:"READ"`
			Write          DBNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT" default:"localhost:4317"`
		} `envconfig:"OTEL"`
	}
}

// DBNode describes one postgres endpoint. Read and Write default to the same
// local database.
type DBNode struct {
	Host     string `envconfig:"HOST"     default:"localhost"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"     default:"todoapp"`
	Password string `envconfig:"PASSWORD" default:"todoapp"`
	Name     string `envconfig:"NAME"     default:"todoapp"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
