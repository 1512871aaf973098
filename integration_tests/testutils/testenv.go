package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/AhmedMHR/PadelPal/app/eventbus"
	"github.com/AhmedMHR/PadelPal/db/bundb"
	"github.com/AhmedMHR/PadelPal/integration_tests/containers"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// TestEnvironment holds the containers and connections shared by a test package.
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	NatsContainer testcontainers.Container
	DB            *bun.DB
	NatsURL       string
	EventBus      eventbus.EventBus
	Logger        *slog.Logger
}

// Option configures NewTestEnvironment.
type Option func(*options)

type options struct {
	withNATS bool
}

// WithNATS also starts a JetStream enabled NATS server and an event bus on it.
func WithNATS() Option {
	return func(o *options) { o.withNATS = true }
}

// NewTestEnvironment starts Postgres, applies every module migration and,
// when requested, starts NATS.
func NewTestEnvironment(opts ...Option) (*TestEnvironment, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(context.Background())
	env := &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	pgContainer, pgConnStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PgContainer = pgContainer

	sqlDB, err := sql.Open("pgx", pgConnStr)
	if err != nil {
		env.Cleanup()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	env.DB = bun.NewDB(sqlDB, pgdialect.New())

	if err := bundb.MigrateAll(ctx, env.DB); err != nil {
		env.Cleanup()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if o.withNATS {
		natsContainer, natsURL, err := containers.SetupNatsContainer(ctx)
		if err != nil {
			env.Cleanup()
			return nil, fmt.Errorf("failed to setup nats container: %w", err)
		}
		env.NatsContainer = natsContainer
		env.NatsURL = natsURL

		bus, err := eventbus.NewEventBus(ctx, natsURL, env.Logger)
		if err != nil {
			env.Cleanup()
			return nil, fmt.Errorf("failed to create event bus: %w", err)
		}
		env.EventBus = bus
	}

	return env, nil
}

// appTables lists every table truncated between tests.
var appTables = []string{"notifications", "match_messages", "matches", "venues", "users"}

// ResetDatabase empties every application table.
func (env *TestEnvironment) ResetDatabase(ctx context.Context) error {
	for _, table := range appTables {
		if _, err := env.DB.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

// Cleanup closes connections and terminates the containers.
func (env *TestEnvironment) Cleanup() {
	if env.EventBus != nil {
		if err := env.EventBus.Close(); err != nil {
			log.Printf("Failed to close event bus: %v", err)
		}
	}
	if env.DB != nil {
		_ = env.DB.Close()
	}

	ctx := context.Background()
	if env.NatsContainer != nil {
		if err := env.NatsContainer.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate NATS container: %v", err)
		}
	}
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate Postgres container: %v", err)
		}
	}
	env.CancelContext()
}
