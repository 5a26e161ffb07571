package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-salary/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	err := apperror.Wrap(
		cause,
		apperror.CodeServiceUnavailable,
		"database unreachable after 3 retries",
		http.StatusServiceUnavailable,
	)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database unreachable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrap_NilCause(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "boom", http.StatusInternalServerError))
}

func TestToHTTP_WrappedServiceUnavailable(t *testing.T) {
	err := apperror.Wrap(
		errors.New("redis: connection pool timeout"),
		apperror.CodeServiceUnavailable,
		"redis unreachable after 3 retries",
		http.StatusServiceUnavailable,
	)

	httpErr := apperror.ToHTTP(err)

	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	assert.Equal(t, apperror.CodeServiceUnavailable, httpErr.Code)
	assert.Equal(t, "redis unreachable after 3 retries", httpErr.Message)
}

func TestToHTTP_UnknownErrorCollapsesTo500(t *testing.T) {
	httpErr := apperror.ToHTTP(errors.New("pq: out of shared memory"))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
	assert.NotContains(t, httpErr.Message, "shared memory")
}
