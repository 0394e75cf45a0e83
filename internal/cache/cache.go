// Package cache - кэш листингов по валюте котировки с политикой свежести.
package cache

import (
	"context"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
)

// DefaultTTL - окно свежести листинга.
const DefaultTTL = 12 * time.Second

// Store - хранилище слотов кэша: один слот на валюту.
// Отсутствие слота - не ошибка, а повод сходить в сеть.
type Store interface {
	Get(ctx context.Context, currency string) (domain.CachedSnapshotSet, bool, error)
	Put(ctx context.Context, currency string, snapshots []domain.CoinSnapshot, now time.Time) error
}

// IsFresh - запись свежая, пока её возраст строго меньше ttl. Запись из
// будущего (расхождение часов с другим писателем общего кэша) считается устаревшей.
func IsFresh(entry domain.CachedSnapshotSet, now time.Time, ttl time.Duration) bool {
	age := now.UnixMilli() - entry.FetchedAtMs
	return age >= 0 && age < ttl.Milliseconds()
}
