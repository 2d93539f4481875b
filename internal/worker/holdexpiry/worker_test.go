package holdexpiry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type mockHoldRepo struct {
	mock.Mock
}

func (m *mockHoldRepo) ExpireHolds(ctx context.Context, at time.Time, limit int) (int64, error) {
	args := m.Called(ctx, at, limit)
	return args.Get(0).(int64), args.Error(1)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) HoldsExpired(count int) {
	m.Called(count)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func newWorker(t *testing.T, repo HoldRepository, recorder MetricsRecorder, interval time.Duration) *Worker {
	t.Helper()
	w, err := NewWorker(repo, recorder, Config{Interval: interval, BatchSize: 10}, logger.NewNop())
	require.NoError(t, err)
	w.timeProvider = fixedTime{now: now}
	return w
}

func TestRunOnce_DrainsFullBatches(t *testing.T) {
	repo := &mockHoldRepo{}
	repo.On("ExpireHolds", mock.Anything, now, 10).Return(int64(10), nil).Twice()
	repo.On("ExpireHolds", mock.Anything, now, 10).Return(int64(3), nil).Once()
	recorder := &mockRecorder{}
	recorder.On("HoldsExpired", 23).Once()

	total, err := newWorker(t, repo, recorder, time.Minute).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(23), total)
	repo.AssertNumberOfCalls(t, "ExpireHolds", 3)
	recorder.AssertExpectations(t)
}

func TestRunOnce_NothingToExpire(t *testing.T) {
	repo := &mockHoldRepo{}
	repo.On("ExpireHolds", mock.Anything, now, 10).Return(int64(0), nil)
	recorder := &mockRecorder{}

	total, err := newWorker(t, repo, recorder, time.Minute).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
	recorder.AssertNotCalled(t, "HoldsExpired", mock.Anything)
}

func TestRunOnce_StorageError(t *testing.T) {
	repo := &mockHoldRepo{}
	repo.On("ExpireHolds", mock.Anything, now, 10).Return(int64(10), nil).Once()
	repo.On("ExpireHolds", mock.Anything, now, 10).Return(int64(0), errors.New("connection reset")).Once()
	recorder := &mockRecorder{}
	recorder.On("HoldsExpired", 10).Once()

	total, err := newWorker(t, repo, recorder, time.Minute).RunOnce(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int64(10), total)
	recorder.AssertExpectations(t)
}

// countingRepo сигнализирует о каждом вызове
type countingRepo struct {
	mu    sync.Mutex
	calls int
	ch    chan struct{}
}

func (c *countingRepo) ExpireHolds(context.Context, time.Time, int) (int64, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	select {
	case c.ch <- struct{}{}:
	default:
	}
	return 0, nil
}

func TestWorker_StartStop(t *testing.T) {
	repo := &countingRepo{ch: make(chan struct{}, 1)}
	w := newWorker(t, repo, &mockRecorder{}, 10*time.Millisecond)

	require.NoError(t, w.Start(context.Background()))
	assert.ErrorIs(t, w.Start(context.Background()), ErrAlreadyRunning)

	select {
	case <-repo.ch:
	case <-time.After(time.Second):
		t.Fatal("worker did not run")
	}

	w.Stop()
	w.Stop()

	repo.mu.Lock()
	calls := repo.calls
	repo.mu.Unlock()
	time.Sleep(30 * time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, calls, repo.calls)
}

func TestNewWorker_InvalidConfig(t *testing.T) {
	_, err := NewWorker(&mockHoldRepo{}, &mockRecorder{}, Config{Interval: 0, BatchSize: 10}, logger.NewNop())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewWorker(&mockHoldRepo{}, &mockRecorder{}, Config{Interval: time.Second, BatchSize: 0}, logger.NewNop())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
