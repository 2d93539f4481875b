package get_slot_occupants

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetSlotOccupants(ctx context.Context, resourceID int64, date time.Time, startTime types.TimeString) ([]domain.SlotOccupant, error) {
	args := m.Called(ctx, resourceID, date, startTime)
	res, _ := args.Get(0).([]domain.SlotOccupant)
	return res, args.Error(1)
}

var date = time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

func doRequest(svc *mockService, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/1/occupants?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"resourceId": "1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("GetSlotOccupants", mock.Anything, int64(1), date, types.TimeString("10:00")).Return([]domain.SlotOccupant{
		{BookingID: 1, UserID: 7, Quantity: 3, Status: domain.StatusConfirmed},
		{BookingID: 2, UserID: 8, Quantity: 2, Status: domain.StatusPending},
	}, nil)

	rec := doRequest(svc, "date=2026-06-02&time=10:00")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"resourceId": 1, "date": "2026-06-02", "startTime": "10:00", "totalOccupied": 5,
		"occupants": [
			{"bookingId": 1, "userId": 7, "quantity": 3, "status": "confirmed"},
			{"bookingId": 2, "userId": 8, "quantity": 2, "status": "pending"}
		]
	}`, rec.Body.String())
}

func TestHandle_EmptySlot(t *testing.T) {
	svc := &mockService{}
	svc.On("GetSlotOccupants", mock.Anything, int64(1), date, types.TimeString("10:00")).Return(nil, nil)

	rec := doRequest(svc, "date=2026-06-02&time=10:00")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"occupants":[]`)
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	for _, query := range []string{"", "date=2026-06-02", "time=10:00", "date=bad&time=10:00", "date=2026-06-02&time=bad"} {
		assert.Equal(t, http.StatusBadRequest, doRequest(svc, query).Code, query)
	}

	svc.On("GetSlotOccupants", mock.Anything, int64(1), date, types.TimeString("10:00")).Return(nil, errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, doRequest(svc, "date=2026-06-02&time=10:00").Code)
}
