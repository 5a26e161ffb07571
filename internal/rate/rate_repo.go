package rate

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rate_repo.go -destination=mock/rate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, assignment *RateAssignment) error
	Find(ctx context.Context, employeeID, areaID uint) (*RateAssignment, error)
	FindAllWithNames(ctx context.Context) ([]RateView, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	AreaExists(ctx context.Context, areaID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// Upsert inserts the assignment or updates the existing row for the
// (employee, area) pair in one statement, so the pair never passes
// through a no-rate window.
func (r *repository) Upsert(ctx context.Context, assignment *RateAssignment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "area_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"base_salary", "updated_at"}),
		}).
		Create(assignment).Error
}

func (r *repository) Find(ctx context.Context, employeeID, areaID uint) (*RateAssignment, error) {
	var assignment RateAssignment
	err := r.db.WithContext(ctx).
		First(&assignment, "employee_id = ? AND area_id = ?", employeeID, areaID).Error
	return &assignment, err
}

func (r *repository) FindAllWithNames(ctx context.Context) ([]RateView, error) {
	var views []RateView
	query := `
SELECT
	r.employee_id,
	e.name AS employee_name,
	r.area_id,
	a.name AS area_name,
	r.base_salary
FROM rate_assignments r
JOIN employees e ON e.id = r.employee_id
JOIN areas a ON a.id = r.area_id
ORDER BY
	e.name ASC,
	a.name ASC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&views).Error
	return views, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) AreaExists(ctx context.Context, areaID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("areas").
		Where("id = ?", areaID).
		Count(&count).Error
	return count > 0, err
}
