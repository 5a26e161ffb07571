package employee

import (
	"time"
)

type Employee struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null;uniqueIndex:uq_employee_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
