package holdexpiry

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Config параметры воркера
type Config struct {
	Interval  time.Duration // период сканирования
	BatchSize int           // максимум строк за один UPDATE
}

// maxBatchesPerRun ограничивает один проход, чтобы воркер не держал соединение бесконечно
const maxBatchesPerRun = 50

// Worker периодически освобождает места, занятые просроченными удержаниями
type Worker struct {
	repo         HoldRepository
	metrics      MetricsRecorder
	config       Config
	timeProvider TimeProvider
	logger       Logger

	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewWorker создает новый экземпляр воркера
func NewWorker(repo HoldRepository, metrics MetricsRecorder, config Config, logger Logger) (*Worker, error) {
	if config.Interval <= 0 || config.BatchSize <= 0 {
		return nil, fmt.Errorf("%w: interval=%s, batch_size=%d", ErrInvalidConfig, config.Interval, config.BatchSize)
	}

	return &Worker{
		repo:         repo,
		metrics:      metrics,
		config:       config,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		stopCh:       make(chan struct{}),
	}, nil
}

// Start запускает цикл сканирования в отдельной горутине
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrAlreadyRunning
	}
	w.running = true

	w.logger.Info("HoldExpiry: starting worker, interval=%s, batch_size=%d", w.config.Interval, w.config.BatchSize)

	w.wg.Add(1)
	go w.loop(ctx)

	return nil
}

// Stop останавливает воркер и ждет завершения текущего прохода
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	w.wg.Wait()
	w.logger.Info("HoldExpiry: worker stopped")
}

func (w *Worker) loop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	// Первый проход сразу после старта
	w.runLogged(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.runLogged(ctx)
		}
	}
}

func (w *Worker) runLogged(ctx context.Context) {
	if _, err := w.RunOnce(ctx); err != nil {
		w.logger.Error("HoldExpiry: %v", err)
	}
}

// RunOnce переводит просроченные удержания в expired пачками по BatchSize
// Возвращает общее количество обработанных строк
func (w *Worker) RunOnce(ctx context.Context) (int64, error) {
	now := w.timeProvider.Now()

	var total int64
	for i := 0; i < maxBatchesPerRun; i++ {
		if ctx.Err() != nil {
			break
		}

		affected, err := w.repo.ExpireHolds(ctx, now, w.config.BatchSize)
		if err != nil {
			w.record(total)
			return total, fmt.Errorf("expire holds: %w", err)
		}
		total += affected

		// Неполная пачка - просроченных удержаний больше нет
		if affected < int64(w.config.BatchSize) {
			break
		}
	}

	w.record(total)
	return total, nil
}

func (w *Worker) record(total int64) {
	if total == 0 {
		return
	}
	w.logger.Info("HoldExpiry: expired %d holds", total)
	w.metrics.HoldsExpired(int(total))
}
