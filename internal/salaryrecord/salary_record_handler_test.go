package salaryrecord_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-salary/internal/salaryrecord"
	salaryerrors "go-salary/internal/salaryrecord/errors"
	"go-salary/internal/shared/apperror"

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

type fakeSalaryRecordService struct {
	createFn     func(ctx context.Context, req salaryrecord.CreateSalaryRecordRequest) (salaryrecord.SalaryRecordResponse, error)
	getAllFn     func(ctx context.Context) ([]salaryrecord.SalaryRecordResponse, error)
	getByIDFn    func(ctx context.Context, id uint) (salaryrecord.SalaryRecordResponse, error)
	updateFn     func(ctx context.Context, id uint, req salaryrecord.UpdateSalaryRecordRequest) (salaryrecord.SalaryRecordResponse, error)
	deleteFn     func(ctx context.Context, id uint) error
	grandTotalFn func(ctx context.Context) (decimal.Decimal, error)
}

func (f *fakeSalaryRecordService) Create(ctx context.Context, req salaryrecord.CreateSalaryRecordRequest) (salaryrecord.SalaryRecordResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeSalaryRecordService) GetAll(ctx context.Context) ([]salaryrecord.SalaryRecordResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeSalaryRecordService) GetByID(ctx context.Context, id uint) (salaryrecord.SalaryRecordResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeSalaryRecordService) Update(ctx context.Context, id uint, req salaryrecord.UpdateSalaryRecordRequest) (salaryrecord.SalaryRecordResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeSalaryRecordService) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeSalaryRecordService) GrandTotal(ctx context.Context) (decimal.Decimal, error) {
	return f.grandTotalFn(ctx)
}

func TestSalaryRecordHandler_Create(t *testing.T) {
	svc := &fakeSalaryRecordService{
		createFn: func(ctx context.Context, req salaryrecord.CreateSalaryRecordRequest) (salaryrecord.SalaryRecordResponse, error) {
			assert.Equal(t, uint(1), req.EmployeeID)
			return salaryrecord.SalaryRecordResponse{
				ID:        1,
				RefNumber: "SAL-000001",
				Total:     "5750.50",
			}, nil
		},
	}

	h := salaryrecord.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":1,"area_id":2,"base_salary":5000,"allowance":750.50}`
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-records", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)

	var data salaryrecord.SalaryRecordResponse
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "5750.50", data.Total)
}

func TestSalaryRecordHandler_Create_MissingEmployee(t *testing.T) {
	apperror.Init()
	h := salaryrecord.NewHandler(&fakeSalaryRecordService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/salary-records", strings.NewReader(`{"base_salary":100}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
	assert.Equal(t, "Employee Id is required", env.Error.Message)
}

func TestSalaryRecordHandler_GrandTotal(t *testing.T) {
	svc := &fakeSalaryRecordService{
		grandTotalFn: func(ctx context.Context) (decimal.Decimal, error) {
			return decimal.RequireFromString("9876.54"), nil
		},
	}

	h := salaryrecord.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/salary-records/grand-total", nil)

	h.GrandTotal(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var data salaryrecord.GrandTotalResponse
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "9876.54", data.GrandTotal)
}

func TestSalaryRecordHandler_Delete_NotFound(t *testing.T) {
	svc := &fakeSalaryRecordService{
		deleteFn: func(ctx context.Context, id uint) error {
			return salaryerrors.ErrSalaryRecordNotFound
		},
	}

	h := salaryrecord.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/salary-records/7", nil)
	c.Params = []gin.Param{{Key: "id", Value: "7"}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestSalaryRecordHandler_GetAll_Paginates(t *testing.T) {
	svc := &fakeSalaryRecordService{
		getAllFn: func(ctx context.Context) ([]salaryrecord.SalaryRecordResponse, error) {
			return []salaryrecord.SalaryRecordResponse{
				{ID: 3, RefNumber: "SAL-000003"},
				{ID: 2, RefNumber: "SAL-000002"},
				{ID: 1, RefNumber: "SAL-000001"},
			}, nil
		},
	}

	h := salaryrecord.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/salary-records?page=1&page_size=2", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var data []salaryrecord.SalaryRecordResponse
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 2)
	assert.Equal(t, uint(3), data[0].ID)
}
