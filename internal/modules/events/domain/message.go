package domain

import "time"

// Message is an entity change event published after a successful mutation.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// NewMessage builds a message for entity/action with the canonical topic.
func NewMessage(entity, action, resourceID string, data any, at time.Time) *Message {
	return &Message{
		Topic:      CustomTopic(entity, action),
		Entity:     entity,
		Action:     action,
		ResourceID: resourceID,
		Data:       data,
		Timestamp:  at.UTC(),
	}
}
