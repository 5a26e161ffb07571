package salaryerrors

import (
	"go-salary/internal/shared/apperror"
	"net/http"
)

var (
	ErrSalaryRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrRecordEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Salary record references an employee that does not exist",
		http.StatusBadRequest,
	)
	ErrRecordAreaNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Salary record references an area that does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary record ID",
		http.StatusBadRequest,
	)
)
