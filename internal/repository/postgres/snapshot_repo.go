package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const getSnapshotQuery = `
	SELECT currency, fetched_at_ms, payload
	FROM snapshot_cache
	WHERE currency = $1
`

// putSnapshotQuery - upsert слота; ряд обновляется, только если новая запись
// не старше сохранённой.
const putSnapshotQuery = `
	INSERT INTO snapshot_cache (currency, fetched_at_ms, payload)
	VALUES ($1, $2, $3)
	ON CONFLICT (currency)
	DO UPDATE SET fetched_at_ms = EXCLUDED.fetched_at_ms,
	              payload = EXCLUDED.payload
	WHERE snapshot_cache.fetched_at_ms <= EXCLUDED.fetched_at_ms
`

// SnapshotRepo - слоты кэша листингов в таблице snapshot_cache (один ряд на валюту).
type SnapshotRepo struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository - Создаёт репозиторий кэша на основе пула соединений.
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Get - слот для валюты; ok=false, если слота нет.
func (r *SnapshotRepo) Get(ctx context.Context, currency string) (domain.CachedSnapshotSet, bool, error) {
	var (
		set     domain.CachedSnapshotSet
		payload []byte
	)
	err := r.db.QueryRow(ctx, getSnapshotQuery, domain.NormalizeCurrency(currency)).Scan(&set.Currency, &set.FetchedAtMs, &payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CachedSnapshotSet{}, false, nil
	}
	if err != nil {
		return domain.CachedSnapshotSet{}, false, err
	}
	if err := json.Unmarshal(payload, &set.Snapshots); err != nil {
		return domain.CachedSnapshotSet{}, false, fmt.Errorf("decode cached snapshots: %w", err)
	}
	return set, true, nil
}

// Put - заменяет слот целиком. Более старая запись не перетирает более новую.
func (r *SnapshotRepo) Put(ctx context.Context, currency string, snapshots []domain.CoinSnapshot, now time.Time) error {
	payload, err := json.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("encode snapshots: %w", err)
	}

	_, err = r.db.Exec(ctx, putSnapshotQuery, domain.NormalizeCurrency(currency), now.UnixMilli(), payload)
	return err
}
