package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
)

// MemoryStore - кэш в памяти процесса, живёт столько же, сколько сессия.
type MemoryStore struct {
	mu     sync.RWMutex
	slots  map[string]domain.CachedSnapshotSet
	logger *slog.Logger
}

func NewMemoryStore(logger *slog.Logger) *MemoryStore {
	return &MemoryStore{
		slots:  make(map[string]domain.CachedSnapshotSet),
		logger: logger,
	}
}

// Get - слот для валюты. Срез снимков копируется, чтобы вызывающий не мог испортить слот.
func (s *MemoryStore) Get(_ context.Context, currency string) (domain.CachedSnapshotSet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.slots[domain.NormalizeCurrency(currency)]
	if !ok {
		return domain.CachedSnapshotSet{}, false, nil
	}
	set.Snapshots = append([]domain.CoinSnapshot(nil), set.Snapshots...)
	return set, true, nil
}

// Put - целиком заменяет слот. Запись со временем старше сохранённого отбрасывается.
func (s *MemoryStore) Put(_ context.Context, currency string, snapshots []domain.CoinSnapshot, now time.Time) error {
	key := domain.NormalizeCurrency(currency)
	set := domain.CachedSnapshotSet{
		Currency:    key,
		FetchedAtMs: now.UnixMilli(),
		Snapshots:   append([]domain.CoinSnapshot(nil), snapshots...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.slots[key]; ok && prev.FetchedAtMs > set.FetchedAtMs {
		s.logger.Debug("cache: stale put dropped",
			slog.String("currency", key),
			slog.Int64("stored_at_ms", prev.FetchedAtMs),
			slog.Int64("put_at_ms", set.FetchedAtMs),
		)
		return nil
	}
	s.slots[key] = set
	s.logger.Debug("cache: slot replaced", slog.String("currency", key), slog.Int("count", len(snapshots)))
	return nil
}
