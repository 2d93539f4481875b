package capacity

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

type mockResourceRepo struct {
	mock.Mock
}

func (m *mockResourceRepo) GetByID(ctx context.Context, id int64) (*domain.ResourceConfig, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.ResourceConfig)
	return res, args.Error(1)
}

type mockOccupancyReader struct {
	mock.Mock
}

func (m *mockOccupancyReader) GetSlotOccupancy(ctx context.Context, resourceID int64, date time.Time, startTime types.TimeString, now time.Time) (int, error) {
	args := m.Called(ctx, resourceID, date, startTime, now)
	return args.Int(0), args.Error(1)
}

func (m *mockOccupancyReader) GetOccupancyForDates(ctx context.Context, resourceID int64, dates []time.Time, now time.Time) (map[domain.SlotKey]int, error) {
	args := m.Called(ctx, resourceID, dates, now)
	res, _ := args.Get(0).(map[domain.SlotKey]int)
	return res, args.Error(1)
}

func (m *mockOccupancyReader) GetSlotOccupants(ctx context.Context, resourceID int64, date time.Time, startTime types.TimeString, now time.Time) ([]domain.SlotOccupant, error) {
	args := m.Called(ctx, resourceID, date, startTime, now)
	res, _ := args.Get(0).([]domain.SlotOccupant)
	return res, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}
