package amqp

import (
	"encoding/json"
	"time"

	"expenses/internal/core"
)

// EventType doubles as the routing key of the published message.
type EventType string

const (
	EventExpenseCreated EventType = "expense.created"
	EventExpenseDeleted EventType = "expense.deleted"
)

// ExpenseEvent announces a committed change to the expense collection.
// Deleted events only carry the ID.
type ExpenseEvent struct {
	Type        EventType `json:"type"`
	ID          int64     `json:"id"`
	Amount      string    `json:"amount,omitempty"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewExpenseCreatedEvent describes a freshly stored expense.
func NewExpenseCreatedEvent(e core.Expense) *ExpenseEvent {
	return &ExpenseEvent{
		Type:        EventExpenseCreated,
		ID:          e.ID,
		Amount:      e.Amount.String(),
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date.String(),
		Timestamp:   time.Now().UTC(),
	}
}

// NewExpenseDeletedEvent describes the removal of expense id.
func NewExpenseDeletedEvent(id int64) *ExpenseEvent {
	return &ExpenseEvent{
		Type:      EventExpenseDeleted,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes
func (m *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseEventFromJSON decodes an event published by this service.
func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var msg ExpenseEvent
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
