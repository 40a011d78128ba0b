package testutil

import (
	"context"
	"time"

	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	PostgresImage = "docker.io/postgres:17-alpine"
	MockDatabase  = "sheetsync"
)

var TestContext = log.WithLogger(context.Background(), log.NewNoopLogger())

func SetupPostgresContainer() (*postgres.PostgresContainer, func(), error) {
	pgContainer, err := postgres.Run(TestContext,
		PostgresImage,
		postgres.WithDatabase(MockDatabase),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)

	tearDown := func() {
		if pgContainer != nil {
			_ = pgContainer.Terminate(TestContext)
		}
	}

	return pgContainer, tearDown, err
}
