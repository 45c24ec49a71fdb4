package dto

import "github.com/google/uuid"

// ProgressUpdatePayload is the subset of a progress/update params mapping the
// consumer knows how to act on. Everything else rides along in the durable
// queue untouched.
type ProgressUpdatePayload struct {
	GoalId      uuid.UUID `json:"goal_id"`
	MilestoneId uuid.UUID `json:"milestone_id"`
	Completed   *bool     `json:"completed,omitempty"`
}
