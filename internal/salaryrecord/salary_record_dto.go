package salaryrecord

import "github.com/shopspring/decimal"

type CreateSalaryRecordRequest struct {
	EmployeeID uint            `json:"employee_id" binding:"required"`
	AreaID     uint            `json:"area_id" binding:"required"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Allowance  decimal.Decimal `json:"allowance"`
}

type UpdateSalaryRecordRequest struct {
	EmployeeID uint            `json:"employee_id" binding:"required"`
	AreaID     uint            `json:"area_id" binding:"required"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Allowance  decimal.Decimal `json:"allowance"`
}

type SalaryRecordResponse struct {
	ID           uint   `json:"id"`
	RefNumber    string `json:"ref_number"`
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	AreaID       uint   `json:"area_id"`
	AreaName     string `json:"area_name,omitempty"`
	BaseSalary   string `json:"base_salary"`
	Allowance    string `json:"allowance"`
	Total        string `json:"total"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type GrandTotalResponse struct {
	GrandTotal string `json:"grand_total"`
}
