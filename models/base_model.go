package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm ana modellere gömülen ortak alanlar.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
