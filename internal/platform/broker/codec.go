package broker

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"restaurantBackoffice/internal/modules/events/domain"
)

// publishTimeout bounds one publish so a stalled broker cannot hold up the
// request that emitted the event.
const publishTimeout = 5 * time.Second

// envelope is the wire form of a change event on every broker.
type envelope struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Topic      string            `json:"topic"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

func encodeMessage(msg *domain.Message) ([]byte, error) {
	body, err := json.Marshal(envelope{
		Entity:     msg.Entity,
		Action:     msg.Action,
		ResourceID: msg.ResourceID,
		Topic:      msg.Topic,
		Metadata:   msg.Metadata,
		Data:       msg.Data,
		Timestamp:  msg.Timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", msg.Topic, err)
	}
	return body, nil
}

// decodeMessage parses an event body received on topic. Bodies that are not
// JSON envelopes are kept as raw strings with entity and action inferred
// from the topic name.
func decodeMessage(topic string, body []byte) *domain.Message {
	msg := &domain.Message{Timestamp: time.Now().UTC()}

	var event envelope
	if err := json.Unmarshal(body, &event); err != nil {
		msg.Topic = topic
		msg.Entity, msg.Action = domain.SplitTopic(topic)
		msg.Action = firstNonEmpty(msg.Action, "unknown")
		msg.Data = string(body)
		return msg
	}

	entity, action := domain.SplitTopic(topic)
	msg.Entity = firstNonEmpty(event.Entity, entity)
	msg.Action = firstNonEmpty(event.Action, action, "unknown")
	msg.ResourceID = event.ResourceID
	msg.Metadata = event.Metadata
	msg.Data = event.Data
	if !event.Timestamp.IsZero() {
		msg.Timestamp = event.Timestamp
	}

	if event.Topic != "" {
		msg.Topic = event.Topic
	} else {
		msg.Topic = domain.CustomTopic(msg.Entity, msg.Action)
	}
	return msg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// prefixedTopic joins the configured prefix and the event topic.
func prefixedTopic(prefix, topic string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		return topic
	}
	return prefix + "." + topic
}

// KafkaTopics lists every change-event topic under prefix.
func KafkaTopics(prefix string) []string {
	entities := []string{
		domain.EntityTables, domain.EntityBookings, domain.EntityCustomers,
		domain.EntityMenu, domain.EntityOrders, domain.EntityStaff, domain.EntityFeedback,
	}
	actions := []string{domain.ActionCreated, domain.ActionUpdated, domain.ActionDeleted}

	topics := make([]string, 0, len(entities)*len(actions))
	for _, entity := range entities {
		for _, action := range actions {
			topics = append(topics, prefixedTopic(prefix, domain.CustomTopic(entity, action)))
		}
	}
	return topics
}
