package rate

import (
	"time"

	"github.com/shopspring/decimal"

	"go-salary/internal/area"
	"go-salary/internal/employee"
)

// RateAssignment is the current (employee, area) -> base salary
// mapping. At most one row exists per pair; writes replace in place.
type RateAssignment struct {
	ID         uint            `gorm:"primaryKey"`
	EmployeeID uint            `gorm:"not null;uniqueIndex:uq_rate_employee_area"`
	AreaID     uint            `gorm:"not null;uniqueIndex:uq_rate_employee_area"`
	BaseSalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Area     *area.Area         `gorm:"foreignKey:AreaID;constraint:OnDelete:CASCADE"`
}

// RateView is the denormalized listing row joined across the three
// tables for display and export.
type RateView struct {
	EmployeeID   uint            `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	AreaID       uint            `json:"area_id"`
	AreaName     string          `json:"area_name"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
}

// Resolved is the outcome of a rate lookup. A configured zero is a
// legitimate rate; only Configured == false means no row exists for
// the pair, which callers surface as a warning rather than an error.
type Resolved struct {
	Configured bool            `json:"configured"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}
