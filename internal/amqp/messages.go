package amqp

import (
	"encoding/json"
	"time"
)

// Entities that emit change messages.
const (
	EntityTransaction  = "transaction"
	EntityIncomeSource = "income_source"
	EntityGoal         = "goal"
	EntityBill         = "bill"
)

// Actions carried by change messages.
const (
	ActionCreated   = "created"
	ActionDeleted   = "deleted"
	ActionPaid      = "paid"
	ActionCompleted = "completed"
)

// ChangeMessage is a lightweight notification that a stored record changed.
// It carries only identifiers; the worker re-reads the record and
// recomputes derived figures from current data, so processing the same
// message twice is harmless.
type ChangeMessage struct {
	Entity    string    `json:"entity"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChangeMessage(entity, id, userID, action string) *ChangeMessage {
	return &ChangeMessage{
		Entity:    entity,
		ID:        id,
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now(),
	}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
