package entity

import (
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	Id          uuid.UUID
	UserId      *uuid.UUID
	Title       string
	Description *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Milestone struct {
	Id        uuid.UUID
	GoalId    uuid.UUID
	Title     string
	DueDate   *time.Time
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
