package rate

import "github.com/shopspring/decimal"

type UpsertRateRequest struct {
	EmployeeID uint            `json:"employee_id" binding:"required"`
	AreaID     uint            `json:"area_id" binding:"required"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

type RateResponse struct {
	EmployeeID uint   `json:"employee_id"`
	AreaID     uint   `json:"area_id"`
	BaseSalary string `json:"base_salary"`
}

type ResolvedResponse struct {
	Configured bool   `json:"configured"`
	BaseSalary string `json:"base_salary"`
}
