package reporterrors

import (
	"go-salary/internal/shared/apperror"
	"net/http"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary report not found",
		http.StatusNotFound,
	)
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary report ID",
		http.StatusBadRequest,
	)
	ErrReportNotReady = apperror.New(
		apperror.CodeInvalidState,
		"Salary report file is not ready yet",
		http.StatusConflict,
	)
)
