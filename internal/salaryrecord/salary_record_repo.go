package salaryrecord

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_record_repo.go -destination=mock/salary_record_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *SalaryRecord) error
	FindAllWithNames(ctx context.Context) ([]SalaryRecordView, error)
	FindByID(ctx context.Context, id uint) (*SalaryRecord, error)
	Update(ctx context.Context, record *SalaryRecord) error
	Delete(ctx context.Context, id uint) error
	GrandTotal(ctx context.Context) (decimal.Decimal, error)
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

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindAllWithNames(ctx context.Context) ([]SalaryRecordView, error) {
	var views []SalaryRecordView
	query := `
SELECT
	s.id,
	s.ref_number,
	s.employee_id,
	e.name AS employee_name,
	s.area_id,
	a.name AS area_name,
	s.base_salary,
	s.allowance,
	s.total,
	s.created_at
FROM salary_records s
JOIN employees e ON e.id = s.employee_id
JOIN areas a ON a.id = s.area_id
ORDER BY
	s.created_at DESC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&views).Error
	return views, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) Update(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&SalaryRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GrandTotal sums every record total; an empty table yields 0, never
// NULL.
func (r *repository) GrandTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(total), 0) FROM salary_records`).
		Scan(&total).Error
	return total, err
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
