package model

import (
	"time"

	"github.com/google/uuid"
)

type Milestone struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GoalId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title     string     `gorm:"type:varchar(255);not null"`
	DueDate   *time.Time `gorm:"type:timestamptz"`
	Completed bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"not null;default:now();autoCreateTime;index"`
	UpdatedAt time.Time  `gorm:"not null;default:now();autoUpdateTime;index"`
}

func (Milestone) TableName() string {
	return "milestones"
}
