package salaryrecord

import (
	"errors"
	"strings"

	salaryerrors "go-salary/internal/salaryrecord/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrSalaryRecordNotFound
	}

	// FK violations surface when a referenced row vanished between the
	// existence check and the insert.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		if strings.Contains(pgErr.ConstraintName, "employee") {
			return salaryerrors.ErrRecordEmployeeNotFound
		}
		return salaryerrors.ErrRecordAreaNotFound
	}

	return err
}
