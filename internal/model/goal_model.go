package model

import (
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      *uuid.UUID `gorm:"type:uuid;index"` // nullable: goal grammar without a sender creates an unowned goal
	Title       string     `gorm:"type:varchar(255);not null"`
	Description *string    `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt   time.Time  `gorm:"not null;default:now();autoCreateTime;index"`
	UpdatedAt   time.Time  `gorm:"not null;default:now();autoUpdateTime;index"`
}

func (Goal) TableName() string {
	return "goals"
}
