package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "goal.created").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeGoalCreated     = "goal.created"
	TypeMessageReceived = "message.received"
)

func NewGoalCreated(goalId, userId, title string) Event {
	return BaseEvent{
		Type: TypeGoalCreated,
		Data: map[string]interface{}{
			"goal_id": goalId,
			"user_id": userId,
			"title":   title,
		},
		OccurredAt: time.Now(),
	}
}

func NewMessageReceived(senderId, text string) Event {
	return BaseEvent{
		Type: TypeMessageReceived,
		Data: map[string]interface{}{
			"sender_id": senderId,
			"text":      text,
		},
		OccurredAt: time.Now(),
	}
}
