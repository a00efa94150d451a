package domain

import "strings"

// Entity names used as the first topic segment.
const (
	EntityTables    = "tables"
	EntityBookings  = "bookings"
	EntityCustomers = "customers"
	EntityMenu      = "menu"
	EntityOrders    = "orders"
	EntityStaff     = "staff"
	EntityFeedback  = "feedback"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

func CreatedTopic(entity string) string {
	return buildEntityTopic(entity, ActionCreated)
}

func UpdatedTopic(entity string) string {
	return buildEntityTopic(entity, ActionUpdated)
}

func DeletedTopic(entity string) string {
	return buildEntityTopic(entity, ActionDeleted)
}

// CustomTopic returns the canonical topic for the given entity and action.
func CustomTopic(entity, action string) string {
	return buildEntityTopic(entity, action)
}

// SplitTopic is the inverse of CustomTopic. It uses the last two segments,
// so prefixed broker topics ("restaurant.bookings.created") also resolve.
func SplitTopic(topic string) (entity, action string) {
	parts := strings.Split(topic, ".")
	if len(parts) >= 2 {
		entity = strings.TrimSpace(parts[len(parts)-2])
		action = strings.TrimSpace(parts[len(parts)-1])
		if entity != "" && action != "" {
			return entity, action
		}
	}
	return strings.TrimSpace(topic), ""
}

func buildEntityTopic(entity, action string) string {
	cleanEntity := strings.TrimSpace(entity)
	cleanAction := strings.TrimSpace(action)
	if cleanEntity == "" || cleanAction == "" {
		return ""
	}
	return cleanEntity + "." + cleanAction
}
