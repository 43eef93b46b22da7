package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"spesa/internal/core"
)

// Event types, also used as routing keys.
const (
	EventProductAdded        = "product.added"
	EventPlannedPriceUpdated = "product.price_updated"
	EventPurchaseRecorded    = "purchase.recorded"
)

// EventMessage describes a change to the shopping list.
// Only the field matching Type is set.
type EventMessage struct {
	ID            uuid.UUID      `json:"id"`
	Type          string         `json:"type"`
	Timestamp     time.Time      `json:"timestamp"`
	Product       *core.Product  `json:"product,omitempty"`
	Purchase      *core.Purchase `json:"purchase,omitempty"`
	PreviousPrice *float64       `json:"previous_price,omitempty"`
}

func newEvent(eventType string) *EventMessage {
	return &EventMessage{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}
}

func NewProductAddedMessage(p core.Product) *EventMessage {
	msg := newEvent(EventProductAdded)
	msg.Product = &p
	return msg
}

// NewPlannedPriceUpdatedMessage carries the product after the update and the
// price it had before.
func NewPlannedPriceUpdatedMessage(p core.Product, previous float64) *EventMessage {
	msg := newEvent(EventPlannedPriceUpdated)
	msg.Product = &p
	msg.PreviousPrice = &previous
	return msg
}

func NewPurchaseRecordedMessage(p core.Purchase) *EventMessage {
	msg := newEvent(EventPurchaseRecorded)
	msg.Purchase = &p
	return msg
}

// ToJSON converts the message to JSON bytes
func (m *EventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// EventMessageFromJSON creates a message from JSON bytes
func EventMessageFromJSON(data []byte) (*EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
