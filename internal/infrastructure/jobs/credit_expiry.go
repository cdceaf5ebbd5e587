package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/LancemDev/greenconnect-test/internal/usecases"
	"github.com/LancemDev/greenconnect-test/pkg/logger"
)

// CreditExpiryJob periodically flips available credit lots past their expiry
// date to expired.
type CreditExpiryJob struct {
	credits  *usecases.CreditUsecase
	interval time.Duration
	stop     chan struct{}
}

func NewCreditExpiryJob(credits *usecases.CreditUsecase, interval time.Duration) *CreditExpiryJob {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CreditExpiryJob{
		credits:  credits,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *CreditExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting credit expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "credit expiry job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "credit expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *CreditExpiryJob) Stop() {
	close(j.stop)
}

func (j *CreditExpiryJob) sweep(ctx context.Context) {
	if _, err := j.credits.ExpireDue(ctx, time.Now().UTC()); err != nil {
		logger.Error(ctx, "credit expiry sweep failed", zap.Error(err))
	}
}
