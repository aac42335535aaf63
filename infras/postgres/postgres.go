package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"
	"todoapp/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection pairs a read and a write handle. Both may point at the same
// database; the split exists so a replica can be swapped in by configuration.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect("read", config.DB.Postgres.Read, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: connect("write", config.DB.Postgres.Write, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
	}
}

func connect(name string, node config.DBNode, maxRetry, waitTime int) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		node.Username,
		node.Password,
		net.JoinHostPort(node.Host, node.Port),
		node.Name,
		node.SSLMode,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", node.Host).
				Str("port", node.Port).
				Str("dbName", node.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", node.Host).
			Str("port", node.Port).
			Str("dbName", node.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Msg("Exhausted database connection retries")

	return nil
}
