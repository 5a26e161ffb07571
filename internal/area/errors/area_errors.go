package areaerrors

import (
	"go-salary/internal/shared/apperror"
	"net/http"
)

var (
	ErrAreaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Area not found",
		http.StatusNotFound,
	)
	ErrAreaNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Area with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidAreaID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid area ID",
		http.StatusBadRequest,
	)
)
