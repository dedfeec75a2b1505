package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	InnohassleID string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'default'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
