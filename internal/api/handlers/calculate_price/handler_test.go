package calculate_price

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	calculatePrice "github.com/m04kA/SMC-GroupBookingService/internal/usecase/calculate_price"
	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
	"github.com/m04kA/SMC-GroupBookingService/pkg/ptr"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *calculatePrice.Request) (*calculatePrice.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*calculatePrice.Response)
	return resp, args.Error(1)
}

func doRequest(uc *mockUseCase, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/1/price?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"resourceId": "1"})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &calculatePrice.Request{
		ResourceID: 1,
		Quantity:   5,
		BasePrice:  ptr.Ptr(100.0),
		Mode:       ptr.Ptr(domain.PricingPerPerson),
	}).Return(&calculatePrice.Response{
		Total:          450,
		TotalFormatted: "450.00",
		Breakdown: []domain.PriceLine{
			{Label: "100.00 × 5 people", Value: 500},
			{Label: "Group discount (10%)", Value: -50, IsDiscount: true},
		},
		Mode:           domain.PricingPerPerson,
		DiscountSource: domain.PolicySourceGlobal,
	}, nil)

	rec := doRequest(uc, "quantity=5&basePrice=100&mode=per_person")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total": 450, "totalFormatted": "450.00", "mode": "per_person", "discountSource": "global",
		"breakdown": [
			{"label": "100.00 × 5 people", "value": 500},
			{"label": "Group discount (10%)", "value": -50, "isDiscount": true}
		]
	}`, rec.Body.String())
}

func TestHandle_BadRequests(t *testing.T) {
	for _, query := range []string{"", "quantity=x", "quantity=2&basePrice=-5", "quantity=2&basePrice=abc", "quantity=2&mode=hourly",
		"quantity=3&basePrice=NaN", "quantity=3&basePrice=Inf", "quantity=3&basePrice=1e17"} {
		uc := &mockUseCase{}
		rec := doRequest(uc, query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, calculatePrice.ErrInternal)

	rec := doRequest(uc, "quantity=2")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
