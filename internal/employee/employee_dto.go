package employee

type CreateEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
}

type EmployeeResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}
