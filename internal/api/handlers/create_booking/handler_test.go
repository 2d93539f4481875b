package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-GroupBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
	"github.com/m04kA/SMC-GroupBookingService/pkg/ptr"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

const validBody = `{"resourceId":1,"bookingDate":"2026-06-02","startTime":"10:00","quantity":4}`

func doRequest(uc *mockUseCase, body string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &createBooking.Request{
		UserID: 42, ResourceID: 1, Date: date, StartTime: "10:00", Quantity: 4,
	}).Return(&createBooking.Response{
		ID: 10, ResourceID: 1, UserID: 42, BookingDate: date, StartTime: "10:00", Quantity: 4,
		Status: string(domain.StatusPending), TotalPrice: 400,
		Breakdown:     []domain.PriceLine{{Label: "100.00 × 4 people", Value: 400}},
		HoldExpiresAt: ptr.Ptr(created.Add(15 * time.Minute)),
		CreatedAt:     created, UpdatedAt: created,
	}, nil)

	rec := doRequest(uc, validBody, 42)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id": 10, "resourceId": 1, "userId": 42, "bookingDate": "2026-06-02", "startTime": "10:00",
		"quantity": 4, "status": "pending", "totalPrice": 400,
		"breakdown": [{"label": "100.00 × 4 people", "value": 400}],
		"holdExpiresAt": "2026-06-01T09:15:00Z",
		"createdAt": "2026-06-01T09:00:00Z", "updatedAt": "2026-06-01T09:00:00Z"
	}`, rec.Body.String())
}

func TestHandle_RequestErrors(t *testing.T) {
	uc := &mockUseCase{}

	assert.Equal(t, http.StatusUnauthorized, doRequest(uc, validBody, 0).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(uc, `{"resourceId":`, 42).Code)

	rec := doRequest(uc, `{"resourceId":1,"bookingDate":"02-06-2026","startTime":"10:00","quantity":4}`, 42)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidDate)

	rec = doRequest(uc, `{"resourceId":1,"bookingDate":"2026-06-02","startTime":"10am","quantity":4}`, 42)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidTime)

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{createBooking.ErrSlotNotAvailable, http.StatusConflict, msgSlotNotAvailable},
		{createBooking.ErrPartyTooSmall, http.StatusBadRequest, msgPartyTooSmall},
		{createBooking.ErrPartyTooLarge, http.StatusBadRequest, msgPartyTooLarge},
		{createBooking.ErrExceedsCapacity, http.StatusBadRequest, msgExceedsCapacity},
		{createBooking.ErrInvalidDate, http.StatusBadRequest, msgInvalidBookingDate},
		{createBooking.ErrTooLateToBook, http.StatusBadRequest, msgTooLateToBook},
		{createBooking.ErrInvalidInput, http.StatusBadRequest, msgInvalidInput},
		{createBooking.ErrInternal, http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(uc, validBody, 42)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}
