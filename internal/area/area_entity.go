package area

import (
	"time"
)

type Area struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null;uniqueIndex:uq_area_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
