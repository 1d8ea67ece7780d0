package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"

	"github.com/seanfitz121/gymtracker/internal/db"
)

const (
	testDBName     = "gymtracker_test"
	testDBPassword = "postgres"
	postgresTag    = "16"
)

// Postgres is a migrated test database, either the one at $POSTGRES_HOST or
// a throwaway docker container.
type Postgres struct {
	Pool     *pgxpool.Pool
	teardown []func()
}

// SetupPostgres returns a pool on a migrated database. Everything is torn down
// when the test ends.
func SetupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, err := NewPostgres(ctx)
	require.NoError(t, err)
	t.Cleanup(pg.Close)
	return pg.Pool
}

func NewPostgres(ctx context.Context) (_ *Postgres, err error) {
	pg := &Postgres{}
	defer func() {
		if err != nil {
			pg.Close()
		}
	}()

	host := os.Getenv("POSTGRES_HOST")
	port := "5432"
	if host == "" {
		host = "localhost"
		port, err = pg.runContainer()
		if err != nil {
			return nil, err
		}
	}

	pg.Pool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     port,
		DBName:     testDBName,
		DBPassword: testDBPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	pg.teardown = append(pg.teardown, pg.Pool.Close)

	if err := db.Migrate(ctx, pg.Pool); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return pg, nil
}

func (pg *Postgres) runContainer() (string, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return "", fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		return "", fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	// idle docker api connections would show up as leaked goroutines
	pg.teardown = append(pg.teardown, dockerPool.Client.HTTPClient.CloseIdleConnections)

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}
	pg.teardown = append(pg.teardown, func() {
		if err := pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})
	_ = pgResource.Expire(120)

	port := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf(
		"postgres://postgres:%s@%s/%s?sslmode=disable",
		testDBPassword, net.JoinHostPort("localhost", port), testDBName,
	)
	if err := dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}); err != nil {
		return "", fmt.Errorf("wait for postgres: %w", err)
	}

	return port, nil
}

func (pg *Postgres) Close() {
	for i := len(pg.teardown) - 1; i >= 0; i-- {
		pg.teardown[i]()
	}
	pg.teardown = nil
}
