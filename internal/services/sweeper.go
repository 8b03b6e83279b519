package services

//go:generate mockgen -source=sweeper.go -destination=sweeper_mock.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/homestay/internal/logger"
)

// ExpiredHomesPurger deletes homes whose availability has ended.
type ExpiredHomesPurger interface {
	PurgeExpiredHomes(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper periodically removes expired homes so that reads never have to.
type Sweeper struct {
	purger   ExpiredHomesPurger
	interval time.Duration
	now      func() time.Time
}

func NewSweeper(purger ExpiredHomesPurger, interval time.Duration) *Sweeper {
	return &Sweeper{purger: purger, interval: interval, now: time.Now}
}

// Run sweeps once immediately and then every interval until ctx is done.
// A non-positive interval disables the loop after the first sweep.
func (s *Sweeper) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Infow("starting expired homes sweeper", "interval", s.interval)
	s.SweepOnce(ctx)

	if s.interval <= 0 {
		return
	}

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Infow("expired homes sweeper shutting down")
			return
		case <-timer.C:
			s.SweepOnce(ctx)
			timer.Reset(s.interval)
		}
	}
}

// SweepOnce performs a single purge and returns the number of deleted homes.
func (s *Sweeper) SweepOnce(ctx context.Context) int64 {
	log := logger.FromContext(ctx)

	deleted, err := s.purger.PurgeExpiredHomes(ctx, s.now().UTC())
	if err != nil {
		log.Errorw("sweep failed", "error", err)
		return 0
	}
	log.Debugw("sweep finished", "deleted", deleted)
	return deleted
}
