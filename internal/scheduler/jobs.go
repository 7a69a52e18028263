package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	defaultParallelism = 4
	defaultJobTimeout  = 2 * time.Minute
)

// refreshableStatuses are the statuses where a stale listing price can still
// change the quote.
var refreshableStatuses = []entities.RequestStatus{
	entities.StatusPendingReview,
	entities.StatusQuoteSent,
}

// PriceRefresher is the part of the lifecycle use case the job needs.
type PriceRefresher interface {
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.BuyForMeRequest, error)
	RefreshPriceCheck(ctx context.Context, id string) (entities.BuyForMeRequest, usecase.PriceAssessment, error)
}

// Jobs contains the scheduled work.
type Jobs struct {
	uc          PriceRefresher
	staleAfter  time.Duration
	parallelism int
	timeout     time.Duration
	now         func() time.Time
	log         *logger.Logger
}

func NewJobs(uc PriceRefresher, staleAfter time.Duration, log *logger.Logger) *Jobs {
	if staleAfter <= 0 {
		staleAfter = usecase.DefaultPriceCheckStaleAfter
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Jobs{
		uc:          uc,
		staleAfter:  staleAfter,
		parallelism: defaultParallelism,
		timeout:     defaultJobTimeout,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log,
	}
}

// RefreshResult summarises one run.
type RefreshResult struct {
	Scanned   int
	Refreshed int
	Degraded  int
	Failed    int
}

// RefreshStalePriceChecks re-verifies every open request whose price check is
// missing or older than staleAfter. Individual failures are logged and
// counted; only a failed listing aborts the run.
func (j *Jobs) RefreshStalePriceChecks(ctx context.Context) (RefreshResult, error) {
	var res RefreshResult
	now := j.now()

	var due []string
	for _, status := range refreshableStatuses {
		rs, err := j.uc.ListByStatus(ctx, status)
		if err != nil {
			return res, err
		}
		res.Scanned += len(rs)
		for _, r := range rs {
			if r.PriceCheck == nil || r.PriceCheck.IsStale(now, j.staleAfter) {
				due = append(due, r.ID)
			}
		}
	}

	var refreshed, degraded, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.parallelism)
	for _, id := range due {
		g.Go(func() error {
			_, assessment, err := j.uc.RefreshPriceCheck(gctx, id)
			switch {
			case err != nil:
				failed.Add(1)
				j.log.WithRequestID(id).Warn("price refresh failed", "error", err)
			case !assessment.Verified:
				degraded.Add(1)
			default:
				refreshed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	res.Refreshed = int(refreshed.Load())
	res.Degraded = int(degraded.Load())
	res.Failed = int(failed.Load())
	return res, nil
}

// runRefresh is the cron entry point.
func (j *Jobs) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	j.log.Info("starting price refresh job")
	res, err := j.RefreshStalePriceChecks(ctx)
	if err != nil {
		j.log.Error("price refresh job failed", "error", err)
		return
	}
	j.log.Info("price refresh job finished",
		"scanned", res.Scanned,
		"refreshed", res.Refreshed,
		"degraded", res.Degraded,
		"failed", res.Failed,
	)
}
