// Package events provides an explicit in-process event bus with a
// subscribe/unsubscribe lifecycle. Callers own a Bus instance; there is no
// package-global listener registry.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Growthlabsg/venturematch/internal/common/logger"
)

const (
	TopicAlertMatched = "alert.matched"
	TopicTeamLiked    = "team.liked"
	TopicTeamSaved    = "team.saved"
)

type Event struct {
	ID        string      `json:"id"`
	Topic     string      `json:"topic"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Handler receives published events. Handlers run synchronously on the
// publisher's goroutine and must not block for long.
type Handler func(ctx context.Context, evt Event)

type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[string]Handler
	logger logger.Logger
}

func NewBus(log logger.Logger) *Bus {
	return &Bus{
		subs:   make(map[string]map[string]Handler),
		logger: log.WithFields(map[string]interface{}{"component": "event-bus"}),
	}
}

// Subscription identifies one registered handler and can detach it.
type Subscription struct {
	bus   *Bus
	topic string
	id    string
}

func (s *Subscription) Unsubscribe() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	if handlers, ok := s.bus.subs[s.topic]; ok {
		delete(handlers, s.id)
		if len(handlers) == 0 {
			delete(s.bus.subs, s.topic)
		}
	}
}

func (b *Bus) Subscribe(topic string, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[string]Handler)
	}
	b.subs[topic][id] = h

	return &Subscription{bus: b, topic: topic, id: id}
}

// Publish delivers the payload to every current subscriber of the topic.
func (b *Bus) Publish(ctx context.Context, topic string, payload interface{}) {
	evt := Event{
		ID:        uuid.NewString(),
		Topic:     topic,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, evt)
	}

	b.logger.Debug("event published", map[string]interface{}{
		"topic":       topic,
		"eventId":     evt.ID,
		"subscribers": len(handlers),
	})
}
