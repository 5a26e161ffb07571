package salaryrecord

import (
	"time"

	"github.com/shopspring/decimal"

	"go-salary/internal/area"
	"go-salary/internal/employee"
)

// SalaryRecord is an immutable snapshot of one computed payment. The
// base salary and allowance are frozen at creation time; later rate
// changes never touch existing rows.
type SalaryRecord struct {
	ID         uint            `gorm:"primaryKey"`
	RefNumber  string          `gorm:"size:20;not null;uniqueIndex:uq_salary_record_ref"`
	EmployeeID uint            `gorm:"not null;index"`
	AreaID     uint            `gorm:"not null;index"`
	BaseSalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Allowance  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Total      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Area     *area.Area         `gorm:"foreignKey:AreaID;constraint:OnDelete:CASCADE"`
}

// SalaryRecordView is the denormalized row with employee and area
// names, ordered newest first in listings.
type SalaryRecordView struct {
	ID           uint            `json:"id"`
	RefNumber    string          `json:"ref_number"`
	EmployeeID   uint            `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	AreaID       uint            `json:"area_id"`
	AreaName     string          `json:"area_name"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Allowance    decimal.Decimal `json:"allowance"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
}
