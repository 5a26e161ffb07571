package report

import (
	"errors"
	"testing"

	reporterrors "go-salary/internal/report/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	assert.NoError(t, mapRepositoryError(nil))

	assert.ErrorIs(t,
		mapRepositoryError(gorm.ErrRecordNotFound),
		reporterrors.ErrReportNotFound,
	)

	dbErr := errors.New("pq: deadlock detected")
	assert.Equal(t, dbErr, mapRepositoryError(dbErr))
}
