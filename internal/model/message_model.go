package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        *uuid.UUID `gorm:"type:uuid;index"` // nullable: text may arrive before a user record exists
	TelexSenderId *string    `gorm:"type:varchar(255)"`
	Text          string     `gorm:"type:text;not null"`
	CreatedAt     time.Time  `gorm:"not null;default:now();autoCreateTime;index"`
	UpdatedAt     time.Time  `gorm:"not null;default:now();autoUpdateTime;index"`
}

func (Message) TableName() string {
	return "messages"
}
