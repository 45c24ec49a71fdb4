package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TelexUserId *string   `gorm:"type:varchar(255);uniqueIndex"`
	Name        *string   `gorm:"type:varchar(255)"`
	Email       *string   `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt   time.Time `gorm:"not null;default:now();autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"not null;default:now();autoUpdateTime;index"`
}

func (User) TableName() string {
	return "users"
}
