package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestArchive(t *testing.T) *Archive {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	creds := &Credentials{
		Host:              host,
		Port:              port.Int(),
		User:              "testuser",
		Password:          "testpass",
		DBName:            "testdb",
		MigrationsDirPath: "./migrations",
	}

	archive, err := NewArchive(creds)
	require.NoError(t, err)
	t.Cleanup(func() { archive.Close() })

	require.NoError(t, archive.RunMigrations(creds))

	return archive
}

func TestArchive_SaveAndListByUser(t *testing.T) {
	archive := setupTestArchive(t)
	ctx := context.Background()

	first := testOrder(uuid.New().String(), "u1")
	second := testOrder(uuid.New().String(), "u1")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	other := testOrder(uuid.New().String(), "u2")

	require.NoError(t, archive.SaveOrder(ctx, first))
	require.NoError(t, archive.SaveOrder(ctx, second))
	require.NoError(t, archive.SaveOrder(ctx, other))

	orders, err := archive.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	assert.Equal(t, StatusProcessing, orders[0].Status)
	assert.True(t, first.Total.Equal(orders[0].Total))
	assert.Equal(t, first.ShippingAddress, orders[0].ShippingAddress)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, first.Items[0].ProductID, orders[0].Items[0].ProductID)
	assert.Equal(t, first.Items[0].Quantity, orders[0].Items[0].Quantity)
}

func TestArchive_DuplicateOrderID(t *testing.T) {
	archive := setupTestArchive(t)
	ctx := context.Background()

	o := testOrder(uuid.New().String(), "u1")
	require.NoError(t, archive.SaveOrder(ctx, o))

	err := archive.SaveOrder(ctx, o)
	assert.ErrorIs(t, err, ErrDuplicateOrder)
}

func TestArchive_ListUnknownUser(t *testing.T) {
	archive := setupTestArchive(t)

	orders, err := archive.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
