package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateGoalRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
}

type UpdateGoalRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status" validate:"required,oneof=active paused completed abandoned"`
}

type UpdateGoalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active paused completed abandoned"`
}

type GoalResponse struct {
	Id          uuid.UUID  `json:"id"`
	UserId      *uuid.UUID `json:"user_id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateMilestoneRequest struct {
	Title   string     `json:"title" validate:"required"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

type UpdateMilestoneRequest struct {
	Id        uuid.UUID  `json:"-"`
	Title     string     `json:"title" validate:"required"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
}

type MilestoneResponse struct {
	Id        uuid.UUID  `json:"id"`
	GoalId    uuid.UUID  `json:"goal_id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type MessageResponse struct {
	Id            uuid.UUID  `json:"id"`
	UserId        *uuid.UUID `json:"user_id,omitempty"`
	TelexSenderId *string    `json:"telex_sender_id,omitempty"`
	Text          string     `json:"text"`
	CreatedAt     time.Time  `json:"created_at"`
}
