package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id            uuid.UUID
	UserId        *uuid.UUID
	TelexSenderId *string
	Text          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
