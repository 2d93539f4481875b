package list_tiers

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

	"github.com/m04kA/SMC-GroupBookingService/internal/service/tiers/models"
	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, resourceID int64) (*models.TierListResponse, error) {
	args := m.Called(ctx, resourceID)
	resp, _ := args.Get(0).(*models.TierListResponse)
	return resp, args.Error(1)
}

func doRequest(svc *mockService, resourceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/"+resourceID+"/tiers", nil)
	req = mux.SetURLVars(req, map[string]string{"resourceId": resourceID})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("List", mock.Anything, int64(3)).Return(&models.TierListResponse{Tiers: []models.TierResponse{
		{ID: 1, ResourceID: 3, MinQuantity: 1, MaxQuantity: 5, PriceType: "per_person", Price: 100, CreatedAt: created},
	}}, nil)

	rec := doRequest(svc, "3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tiers":[{"id":1,"resourceId":3,"minQuantity":1,"maxQuantity":5,"priceType":"per_person","price":100,"createdAt":"2026-05-01T10:00:00Z"}]}`,
		rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	assert.Equal(t, http.StatusBadRequest, doRequest(svc, "x").Code)

	svc.On("List", mock.Anything, int64(3)).Return(nil, errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, doRequest(svc, "3").Code)
}
