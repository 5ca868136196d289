package kafka

import (
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
)

func newMockedProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	t.Helper()
	mockProducer := mocks.NewSyncProducer(t, nil)
	return &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}, mockProducer
}

func TestProducer_PublishEvent(t *testing.T) {
	producer, mockProducer := newMockedProducer(t)

	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var event CartEvent
		return json.Unmarshal(value, &event)
	})

	event := NewCartEvent(EventTypeCartSaved, "sid-1", "cart", 2, 5)
	if err := producer.PublishEvent(TopicCartEvents, "sid-1", event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	producer, mockProducer := newMockedProducer(t)

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	event := NewCartEvent(EventTypeCartCleared, "sid-1", "cart", 0, 0)
	if err := producer.PublishEvent(TopicCartEvents, "sid-1", event); err == nil {
		t.Fatal("expected publish error")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewCartEvent(t *testing.T) {
	event := NewCartEvent(EventTypeCartSaved, "sid-1", "cart", 3, 7)

	if event.EventType != EventTypeCartSaved {
		t.Fatalf("unexpected event type: %s", event.EventType)
	}
	if event.SessionID != "sid-1" || event.CartName != "cart" {
		t.Fatalf("unexpected identifiers: %s/%s", event.SessionID, event.CartName)
	}
	if event.ItemsTotal != 3 || event.TotalQuantity != 7 {
		t.Fatalf("unexpected totals: %d/%d", event.ItemsTotal, event.TotalQuantity)
	}
	if event.Timestamp.IsZero() {
		t.Fatal("timestamp must be set")
	}
}
