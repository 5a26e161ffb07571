package rateerrors

import (
	"go-salary/internal/shared/apperror"
	"net/http"
)

var (
	ErrRateEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Rate references an employee that does not exist",
		http.StatusBadRequest,
	)
	ErrRateAreaNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Rate references an area that does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidRateSelection = apperror.New(
		apperror.CodeInvalidInput,
		"Both employee_id and area_id are required",
		http.StatusBadRequest,
	)
)
