package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id          uuid.UUID
	TelexUserId *string
	Name        *string
	Email       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExternalIdentity is the channel-side identity a user is resolved from.
// Either field may be empty; Email wins as the get-or-create key when set.
type ExternalIdentity struct {
	TelexUserId string
	Name        string
	Email       string
}

func (i ExternalIdentity) IsEmpty() bool {
	return i.TelexUserId == "" && i.Email == ""
}
