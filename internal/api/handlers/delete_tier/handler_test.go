package delete_tier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroupBookingService/internal/service/tiers"
	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, tierID int64) error {
	return m.Called(ctx, tierID).Error(0)
}

func doRequest(svc *mockService, tierID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tiers/"+tierID, nil)
	req = mux.SetURLVars(req, map[string]string{"tierId": tierID})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Delete", mock.Anything, int64(5)).Return(nil).Once()
	assert.Equal(t, http.StatusNoContent, doRequest(svc, "5").Code)

	svc.On("Delete", mock.Anything, int64(5)).Return(tiers.ErrTierNotFound).Once()
	assert.Equal(t, http.StatusNotFound, doRequest(svc, "5").Code)

	svc.On("Delete", mock.Anything, int64(5)).Return(tiers.ErrInternal).Once()
	assert.Equal(t, http.StatusInternalServerError, doRequest(svc, "5").Code)

	assert.Equal(t, http.StatusBadRequest, doRequest(svc, "abc").Code)
}
