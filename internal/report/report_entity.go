package report

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// SalaryReport tracks one requested PDF export. The row is created
// synchronously; the file itself is rendered by the consumer worker
// once the outbox event arrives.
type SalaryReport struct {
	ID          uint            `gorm:"primaryKey"`
	RefNumber   string          `gorm:"size:20;not null;uniqueIndex:uq_salary_report_ref"`
	Status      string          `gorm:"size:20;not null;default:PENDING"`
	RecordCount int             `gorm:"not null;default:0"`
	GrandTotal  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FilePath    string          `gorm:"size:255"`
	FailReason  string          `gorm:"size:255"`
	GeneratedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReportLine is one salary record as it appears in the rendered table.
type ReportLine struct {
	RefNumber    string          `json:"ref_number"`
	EmployeeName string          `json:"employee_name"`
	AreaName     string          `json:"area_name"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Allowance    decimal.Decimal `json:"allowance"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
}
