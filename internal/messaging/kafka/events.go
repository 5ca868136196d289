package kafka

import "time"

// EventType определяет тип события корзины.
type EventType string

const (
	// EventTypeCartSaved — корзина явно сохранена в сессию.
	EventTypeCartSaved EventType = "cart.saved"
	// EventTypeCartCleared — корзина очищена и сохранена пустой.
	EventTypeCartCleared EventType = "cart.cleared"
)

// TopicCartEvents — topic для событий жизненного цикла корзин.
const TopicCartEvents = "cart.session.events"

// CartEvent описывает снимок корзины в момент сохранения.
type CartEvent struct {
	EventType     EventType              `json:"event_type"`
	SessionID     string                 `json:"session_id"`
	CartName      string                 `json:"cart_name"`
	ItemsTotal    int                    `json:"items_total"`
	TotalQuantity int                    `json:"total_quantity"`
	Timestamp     time.Time              `json:"timestamp"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// NewCartEvent создаёт событие корзины с текущей меткой времени.
func NewCartEvent(eventType EventType, sessionID, cartName string, itemsTotal, totalQuantity int) *CartEvent {
	return &CartEvent{
		EventType:     eventType,
		SessionID:     sessionID,
		CartName:      cartName,
		ItemsTotal:    itemsTotal,
		TotalQuantity: totalQuantity,
		Timestamp:     time.Now(),
	}
}
