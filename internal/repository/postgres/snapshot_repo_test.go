package postgres

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Более старая запись не должна перетирать слот
func TestPutSnapshotQuery_Monotonic(t *testing.T) {
	q := strings.Join(strings.Fields(putSnapshotQuery), " ")
	assert.Contains(t, q, "ON CONFLICT (currency) DO UPDATE")
	assert.Contains(t, q, "WHERE snapshot_cache.fetched_at_ms <= EXCLUDED.fetched_at_ms")
}

// newTestRepo - репозиторий на живой базе из PG_TEST_DSN; без неё тест пропускается.
func newTestRepo(t *testing.T) *SnapshotRepo {
	t.Helper()
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS snapshot_cache (
			currency      TEXT PRIMARY KEY,
			fetched_at_ms BIGINT NOT NULL,
			payload       JSONB NOT NULL
		)`)
	require.NoError(t, err)
	return NewSnapshotRepository(pool)
}

func TestSnapshotRepo_PutGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	currency := "t" + uuid.NewString()[:8]

	_, ok, err := repo.Get(ctx, currency)
	require.NoError(t, err)
	assert.False(t, ok)

	now := time.UnixMilli(1_700_000_000_000)
	newer := []domain.CoinSnapshot{{ID: "bitcoin", Symbol: "btc", CurrentPrice: 2}}
	older := []domain.CoinSnapshot{{ID: "bitcoin", Symbol: "btc", CurrentPrice: 1}}

	require.NoError(t, repo.Put(ctx, currency, newer, now))
	require.NoError(t, repo.Put(ctx, currency, older, now.Add(-time.Second)))

	got, ok, err := repo.Get(ctx, currency)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, now.UnixMilli(), got.FetchedAtMs)
	assert.Equal(t, newer, got.Snapshots)
}
