//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wealthpath/finance-tracker/internal/config"
)

func TestOpen_Postgres(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("finance"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	defer func() { _ = pgContainer.Terminate(ctx) }()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, closeFn, err := Open(ctx, config.StoreConfig{Backend: config.BackendPostgres, DatabaseURL: connStr})
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	_, err = s.Get(ctx, KeyProjects)
	assert.ErrorIs(t, err, ErrNotFound)

	type project struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	require.NoError(t, Save(ctx, s, KeyProjects, []project{{ID: "p1", Name: "Site"}}))
	require.NoError(t, Save(ctx, s, KeyProjects, []project{{ID: "p2", Name: "App"}}))

	got := Load(ctx, s, KeyProjects, []project(nil))
	assert.Equal(t, []project{{ID: "p2", Name: "App"}}, got)
}
