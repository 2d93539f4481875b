package capacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
	"github.com/m04kA/SMC-GroupBookingService/pkg/ptr"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

var (
	now      = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	day1     = time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	day2     = time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)
	defaults = domain.GlobalDefaults{MinPartySize: 1, MaxPartySize: 6, PricingMode: domain.PricingPerPerson}
)

func newFilter(resources *mockResourceRepo, occupancy *mockOccupancyReader) *Filter {
	log := logger.NewNop()
	f := NewFilter(NewResolver(resources, defaults, log), occupancy, log)
	f.timeProvider = fixedTime{now: now}
	return f
}

func resourceWithCapacity(id int64, capacity int) *domain.ResourceConfig {
	return &domain.ResourceConfig{ID: id, Capacity: ptr.Ptr(capacity)}
}

func testSlots() domain.SlotMap {
	return domain.SlotMap{
		{Date: day1, Slots: []domain.Slot{
			{Time: "10:00", Payload: []byte(`{"room":"A"}`)},
			{Time: "12:00"},
			{Time: "14:00"},
		}},
		{Date: day2, Slots: []domain.Slot{
			{Time: "10:00"},
		}},
	}
}

func TestCheckAvailability_NotEnoughSeats(t *testing.T) {
	resources := &mockResourceRepo{}
	occupancy := &mockOccupancyReader{}
	resources.On("GetByID", mock.Anything, int64(1)).Return(resourceWithCapacity(1, 10), nil)
	occupancy.On("GetSlotOccupancy", mock.Anything, int64(1), day1, types.TimeString("10:00"), now).Return(8, nil)

	f := newFilter(resources, occupancy)

	available, err := f.CheckAvailability(context.Background(), 1, day1, "10:00", 3)
	require.NoError(t, err)
	assert.False(t, available)

	maxAvailable, err := f.GetMaxAvailable(context.Background(), 1, day1, "10:00")
	require.NoError(t, err)
	assert.Equal(t, 2, maxAvailable)

	available, err = f.CheckAvailability(context.Background(), 1, day1, "10:00", 2)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestGetMaxAvailable_NeverNegative(t *testing.T) {
	resources := &mockResourceRepo{}
	occupancy := &mockOccupancyReader{}
	resources.On("GetByID", mock.Anything, int64(1)).Return(resourceWithCapacity(1, 10), nil)
	occupancy.On("GetSlotOccupancy", mock.Anything, int64(1), day1, types.TimeString("10:00"), now).Return(15, nil)

	f := newFilter(resources, occupancy)

	maxAvailable, err := f.GetMaxAvailable(context.Background(), 1, day1, "10:00")
	require.NoError(t, err)
	assert.Equal(t, 0, maxAvailable)
}

func TestCheckAvailability_UnknownResourceUsesDefaultCapacity(t *testing.T) {
	resources := &mockResourceRepo{}
	occupancy := &mockOccupancyReader{}
	resources.On("GetByID", mock.Anything, int64(9)).Return(nil, resourceRepo.ErrResourceNotFound)
	occupancy.On("GetSlotOccupancy", mock.Anything, int64(9), day1, types.TimeString("10:00"), now).Return(0, nil)

	f := newFilter(resources, occupancy)

	maxAvailable, err := f.GetMaxAvailable(context.Background(), 9, day1, "10:00")
	require.NoError(t, err)
	assert.Equal(t, defaults.MaxPartySize, maxAvailable)

	available, err := f.CheckAvailability(context.Background(), 9, day1, "10:00", 2)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheckAvailability_StorageErrorIsNotAvailable(t *testing.T) {
	resources := &mockResourceRepo{}
	occupancy := &mockOccupancyReader{}
	resources.On("GetByID", mock.Anything, int64(1)).Return(resourceWithCapacity(1, 10), nil)
	occupancy.On("GetSlotOccupancy", mock.Anything, int64(1), day1, types.TimeString("10:00"), now).
		Return(0, errors.New("connection refused"))

	f := newFilter(resources, occupancy)

	available, err := f.CheckAvailability(context.Background(), 1, day1, "10:00", 1)
	assert.ErrorIs(t, err, ErrStorage)
	assert.False(t, available)
}

func TestCheckAvailability_ResourceStorageError(t *testing.T) {
	resources := &mockResourceRepo{}
	occupancy := &mockOccupancyReader{}
	resources.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("db down"))

	f := newFilter(resources, occupancy)

	_, err := f.CheckAvailability(context.Background(), 1, day1, "10:00", 1)
	assert.ErrorIs(t, err, ErrStorage)
	occupancy.AssertNotCalled(t, "GetSlotOccupancy", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFilterByCapacity_QuantityAboveCapacityShortCircuits(t *testing.T) {
	resources := &mockResourceRepo{}
	occupancy := &mockOccupancyReader{}
	resources.On("GetByID", mock.Anything, int64(1)).Return(resourceWithCapacity(1, 10), nil)

	f := newFilter(resources, occupancy)

	result, err := f.FilterByCapacity(context.Background(), testSlots(), 1, 11)
	require.NoError(t, err)
	assert.Empty(t, result)
	occupancy.AssertNotCalled(t, "GetOccupancyForDates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	occupancy.AssertNotCalled(t, "GetSlotOccupancy", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFilterByCapacity_DropsFullSlotsAndEmptyDates(t *testing.T) {
	resources := &mockResourceRepo{}
	occupancy := &mockOccupancyReader{}
	resources.On("GetByID", mock.Anything, int64(1)).Return(resourceWithCapacity(1, 10), nil)
	occupancy.On("GetOccupancyForDates", mock.Anything, int64(1), []time.Time{day1, day2}, now).
		Return(map[domain.SlotKey]int{
			domain.NewSlotKey(day1, "10:00"): 2,
			domain.NewSlotKey(day1, "12:00"): 9,
			domain.NewSlotKey(day2, "10:00"): 8,
		}, nil)

	f := newFilter(resources, occupancy)

	result, err := f.FilterByCapacity(context.Background(), testSlots(), 1, 3)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, day1, result[0].Date)
	require.Len(t, result[0].Slots, 2)
	assert.Equal(t, types.TimeString("10:00"), result[0].Slots[0].Time)
	assert.Equal(t, 8, result[0].Slots[0].Remaining)
	assert.JSONEq(t, `{"room":"A"}`, string(result[0].Slots[0].Payload))
	assert.Equal(t, types.TimeString("14:00"), result[0].Slots[1].Time)
	assert.Equal(t, 10, result[0].Slots[1].Remaining)
}

func TestFilterByCapacity_Monotonic(t *testing.T) {
	resources := &mockResourceRepo{}
	occupancy := &mockOccupancyReader{}
	resources.On("GetByID", mock.Anything, int64(1)).Return(resourceWithCapacity(1, 10), nil)
	occupancy.On("GetOccupancyForDates", mock.Anything, int64(1), mock.Anything, now).
		Return(map[domain.SlotKey]int{
			domain.NewSlotKey(day1, "10:00"): 1,
			domain.NewSlotKey(day1, "12:00"): 5,
			domain.NewSlotKey(day1, "14:00"): 12,
			domain.NewSlotKey(day2, "10:00"): 7,
		}, nil)

	f := newFilter(resources, occupancy)

	previous := -1
	for quantity := 1; quantity <= 12; quantity++ {
		result, err := f.FilterByCapacity(context.Background(), testSlots(), 1, quantity)
		require.NoError(t, err)

		count := result.SlotCount()
		if previous >= 0 {
			assert.LessOrEqual(t, count, previous, "quantity=%d", quantity)
		}
		previous = count

		for _, day := range result {
			assert.NotEmpty(t, day.Slots)
			for _, slot := range day.Slots {
				assert.GreaterOrEqual(t, slot.Remaining, quantity)
			}
		}
	}
}

func TestFilterByCapacity_StorageError(t *testing.T) {
	resources := &mockResourceRepo{}
	occupancy := &mockOccupancyReader{}
	resources.On("GetByID", mock.Anything, int64(1)).Return(resourceWithCapacity(1, 10), nil)
	occupancy.On("GetOccupancyForDates", mock.Anything, int64(1), mock.Anything, now).
		Return(nil, errors.New("timeout"))

	f := newFilter(resources, occupancy)

	result, err := f.FilterByCapacity(context.Background(), testSlots(), 1, 1)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Nil(t, result)
}

func TestFilterByCapacity_InvalidQuantity(t *testing.T) {
	f := newFilter(&mockResourceRepo{}, &mockOccupancyReader{})

	_, err := f.FilterByCapacity(context.Background(), testSlots(), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestGetSlotOccupants(t *testing.T) {
	occupancy := &mockOccupancyReader{}
	occupants := []domain.SlotOccupant{{BookingID: 1, Quantity: 3, Status: domain.StatusConfirmed}}
	occupancy.On("GetSlotOccupants", mock.Anything, int64(1), day1, types.TimeString("10:00"), now).Return(occupants, nil)

	f := newFilter(&mockResourceRepo{}, occupancy)

	got, err := f.GetSlotOccupants(context.Background(), 1, day1, "10:00")
	require.NoError(t, err)
	assert.Equal(t, occupants, got)
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 2, Remaining(10, 8))
	assert.Equal(t, 0, Remaining(10, 10))
	assert.Equal(t, 0, Remaining(10, 15))
}
