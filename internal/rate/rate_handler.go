package rate

import (
	"net/http"
	"strconv"

	rateerrors "go-salary/internal/rate/errors"
	"go-salary/internal/shared/apperror"
	"go-salary/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rate.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rate.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rate request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upsert(c *gin.Context) {
	h.logger.Debug("http upsert rate")
	var req UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Resolve(c *gin.Context) {
	employeeID, err1 := strconv.ParseUint(c.Query("employee_id"), 10, 64)
	areaID, err2 := strconv.ParseUint(c.Query("area_id"), 10, 64)
	if err1 != nil || err2 != nil {
		h.writeServiceError(c, rateerrors.ErrInvalidRateSelection)
		return
	}

	resolved, err := h.service.Resolve(c.Request.Context(), uint(employeeID), uint(areaID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := ResolvedResponse{Configured: resolved.Configured}
	if resolved.Configured {
		resp.BaseSalary = resolved.BaseSalary.StringFixed(2)
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAllWithNames(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
