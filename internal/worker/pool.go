package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// scanBatch сколько сделок берется за один проход сканера
const scanBatch = 50

// Reconciler доводит сделку с загруженным чеком до check_sent
type Reconciler interface {
	Reconcile(ctx context.Context, dealID uuid.UUID) (*domain.Deal, error)
}

// Pool представляет пул воркеров, которые досылают переход в check_sent
// для сделок, где чек сохранен, а статус не обновился
type Pool struct {
	workers      int
	queue        chan uuid.UUID
	dealRepo     domain.DealRepository
	reconciler   Reconciler
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	scanInterval time.Duration,
	dealRepo domain.DealRepository,
	reconciler Reconciler,
	logger *zap.Logger,
) *Pool {
	if workers < 1 {
		workers = 1
	}
	if scanInterval <= 0 {
		scanInterval = 10 * time.Second
	}
	return &Pool{
		workers:      workers,
		queue:        make(chan uuid.UUID, queueSize),
		dealRepo:     dealRepo,
		reconciler:   reconciler,
		logger:       logger,
		scanInterval: scanInterval,
		inFlight:     make(map[uuid.UUID]struct{}),
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop ждет завершения воркеров после отмены контекста Start
func (p *Pool) Stop() {
	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("reconcile worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("reconcile worker stopping", zap.Int("worker_id", id))
			return
		case dealID := <-p.queue:
			p.processDeal(ctx, dealID)
		}
	}
}

// scanner сканирует сделки сразу и далее по таймеру
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	p.scanStalledDeals(ctx)

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("reconcile scanner stopping")
			return
		case <-ticker.C:
			p.scanStalledDeals(ctx)
		}
	}
}

// scanStalledDeals ставит в очередь сделки с чеком, не переведенные в check_sent
func (p *Pool) scanStalledDeals(ctx context.Context) {
	deals, err := p.dealRepo.GetDealsAwaitingCheckAdvance(ctx, scanBatch)
	if err != nil {
		p.logger.Error("failed to get deals awaiting check advance", zap.Error(err))
		return
	}

	for _, deal := range deals {
		if !p.markInFlight(deal.ID) {
			continue
		}

		select {
		case p.queue <- deal.ID:
		case <-ctx.Done():
			p.release(deal.ID)
			return
		default:
			p.release(deal.ID)
			p.logger.Warn("queue is full, skipping deal", zap.String("deal_id", deal.ID.String()))
		}
	}
}

func (p *Pool) processDeal(ctx context.Context, dealID uuid.UUID) {
	defer p.release(dealID)

	p.logger.Debug("reconciling deal", zap.String("deal_id", dealID.String()))

	deal, err := p.reconciler.Reconcile(ctx, dealID)
	if err != nil {
		p.logger.Error("failed to reconcile deal",
			zap.String("deal_id", dealID.String()),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("deal reconciled",
		zap.String("deal_id", dealID.String()),
		zap.String("status", string(deal.Status)),
	)
}

// markInFlight не дает поставить сделку в очередь повторно, пока она обрабатывается
func (p *Pool) markInFlight(dealID uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.inFlight[dealID]; ok {
		return false
	}
	p.inFlight[dealID] = struct{}{}
	return true
}

func (p *Pool) release(dealID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, dealID)
}
