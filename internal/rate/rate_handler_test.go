package rate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-salary/internal/rate"
	rateerrors "go-salary/internal/rate/errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

type fakeRateService struct {
	upsertFn  func(ctx context.Context, req rate.UpsertRateRequest) (rate.RateResponse, error)
	resolveFn func(ctx context.Context, employeeID, areaID uint) (rate.Resolved, error)
	getAllFn  func(ctx context.Context) ([]rate.RateView, error)
}

func (f *fakeRateService) Upsert(ctx context.Context, req rate.UpsertRateRequest) (rate.RateResponse, error) {
	return f.upsertFn(ctx, req)
}

func (f *fakeRateService) Resolve(ctx context.Context, employeeID, areaID uint) (rate.Resolved, error) {
	return f.resolveFn(ctx, employeeID, areaID)
}

func (f *fakeRateService) GetAllWithNames(ctx context.Context) ([]rate.RateView, error) {
	return f.getAllFn(ctx)
}

func TestRateHandler_Upsert(t *testing.T) {
	svc := &fakeRateService{
		upsertFn: func(ctx context.Context, req rate.UpsertRateRequest) (rate.RateResponse, error) {
			assert.Equal(t, uint(1), req.EmployeeID)
			assert.Equal(t, uint(2), req.AreaID)
			return rate.RateResponse{EmployeeID: 1, AreaID: 2, BaseSalary: "4500.00"}, nil
		},
	}

	h := rate.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":1,"area_id":2,"base_salary":4500}`
	c.Request = httptest.NewRequest(http.MethodPut, "/rates", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Upsert(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
}

func TestRateHandler_Resolve(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		svc := &fakeRateService{
			resolveFn: func(ctx context.Context, employeeID, areaID uint) (rate.Resolved, error) {
				return rate.Resolved{Configured: true, BaseSalary: decimal.RequireFromString("750.25")}, nil
			},
		}

		h := rate.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/rates/resolve?employee_id=1&area_id=2", nil)

		h.Resolve(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

		var data rate.ResolvedResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.True(t, data.Configured)
		assert.Equal(t, "750.25", data.BaseSalary)
	})

	t.Run("unconfigured pair returns ok with flag", func(t *testing.T) {
		svc := &fakeRateService{
			resolveFn: func(ctx context.Context, employeeID, areaID uint) (rate.Resolved, error) {
				return rate.Resolved{Configured: false}, nil
			},
		}

		h := rate.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/rates/resolve?employee_id=1&area_id=2", nil)

		h.Resolve(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

		var data rate.ResolvedResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.False(t, data.Configured)
		assert.Empty(t, data.BaseSalary)
	})

	t.Run("missing query params", func(t *testing.T) {
		h := rate.NewHandler(&fakeRateService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/rates/resolve?employee_id=abc", nil)

		h.Resolve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, rateerrors.ErrInvalidRateSelection.Message, env.Error.Message)
	})
}
