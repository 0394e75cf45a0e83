package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// MarketsRefresher - то, что планировщик умеет обновлять.
type MarketsRefresher interface {
	Visible() bool
	LoadMarkets(ctx context.Context, forceRefresh bool) error
}

type Scheduler struct {
	dashboard MarketsRefresher
	interval  time.Duration
	logger    *slog.Logger
}

// NewScheduler — конструктор планировщика автообновления листинга
func NewScheduler(dashboard MarketsRefresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	return &Scheduler{
		dashboard: dashboard,
		interval:  interval,
		logger:    logger,
	}
}

// Start — первая загрузка сразу (через кэш), затем обновление каждые interval,
// пока дашборд виден. Работает до остановки контекста.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started")
	s.logger.Debug("scheduler interval configured", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// первый запуск сразу
	if err := s.dashboard.LoadMarkets(ctx, false); err != nil {
		s.logger.Error("initial load failed", slog.Any("err", err))
	}

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// runOnce — одна итерация: принудительное обновление, если дашборд на экране
func (s *Scheduler) runOnce(ctx context.Context) {
	if !s.dashboard.Visible() {
		s.logger.Debug("tick: dashboard hidden, skipped")
		return
	}
	s.logger.Debug("tick: refreshing markets")
	if err := s.dashboard.LoadMarkets(ctx, true); err != nil {
		s.logger.Error("tick: refresh failed", slog.Any("err", err))
		return
	}
	s.logger.Debug("tick: completed")
}
