package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, userID)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func doRequest(svc *mockService, bookingID string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	ts := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, int64(5), int64(42)).Return(&models.BookingResponse{
		ID: 5, ResourceID: 1, UserID: 42, BookingDate: "2026-06-02", StartTime: "10:00",
		Quantity: 3, Status: "confirmed", TotalPrice: 300, CreatedAt: ts, UpdatedAt: ts,
	}, nil)

	rec := doRequest(svc, "5", 42)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 5, "resourceId": 1, "userId": 42, "bookingDate": "2026-06-02", "startTime": "10:00",
		"quantity": 3, "status": "confirmed", "totalPrice": 300,
		"createdAt": "2026-06-01T09:00:00Z", "updatedAt": "2026-06-01T09:00:00Z"
	}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	assert.Equal(t, http.StatusBadRequest, doRequest(svc, "abc", 42).Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(svc, "5", 0).Code)

	svc.On("GetByID", mock.Anything, int64(5), int64(42)).Return(nil, bookings.ErrBookingNotFound).Once()
	assert.Equal(t, http.StatusNotFound, doRequest(svc, "5", 42).Code)

	svc.On("GetByID", mock.Anything, int64(5), int64(42)).Return(nil, bookings.ErrAccessDenied).Once()
	assert.Equal(t, http.StatusForbidden, doRequest(svc, "5", 42).Code)

	svc.On("GetByID", mock.Anything, int64(5), int64(42)).Return(nil, bookings.ErrInternal).Once()
	assert.Equal(t, http.StatusInternalServerError, doRequest(svc, "5", 42).Code)
}
