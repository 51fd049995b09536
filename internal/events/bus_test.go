package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Growthlabsg/venturematch/internal/common/logger"
)

func TestBus_PublishReachesSubscriber(t *testing.T) {
	bus := NewBus(logger.NewTestLogger(t))

	var received []Event
	bus.Subscribe(TopicTeamLiked, func(ctx context.Context, evt Event) {
		received = append(received, evt)
	})

	bus.Publish(context.Background(), TopicTeamLiked, "payload-1")

	require.Len(t, received, 1)
	assert.Equal(t, TopicTeamLiked, received[0].Topic)
	assert.Equal(t, "payload-1", received[0].Payload)
	assert.NotEmpty(t, received[0].ID)
	assert.False(t, received[0].Timestamp.IsZero())
}

func TestBus_TopicsAreIsolated(t *testing.T) {
	bus := NewBus(logger.NewNoOpLogger())

	likedCount := 0
	savedCount := 0
	bus.Subscribe(TopicTeamLiked, func(ctx context.Context, evt Event) { likedCount++ })
	bus.Subscribe(TopicTeamSaved, func(ctx context.Context, evt Event) { savedCount++ })

	bus.Publish(context.Background(), TopicTeamLiked, nil)
	bus.Publish(context.Background(), TopicTeamLiked, nil)
	bus.Publish(context.Background(), TopicTeamSaved, nil)

	assert.Equal(t, 2, likedCount)
	assert.Equal(t, 1, savedCount)
}

func TestBus_MultipleSubscribersAllReceive(t *testing.T) {
	bus := NewBus(logger.NewNoOpLogger())

	a, b := 0, 0
	bus.Subscribe(TopicAlertMatched, func(ctx context.Context, evt Event) { a++ })
	bus.Subscribe(TopicAlertMatched, func(ctx context.Context, evt Event) { b++ })

	bus.Publish(context.Background(), TopicAlertMatched, nil)

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus(logger.NewNoOpLogger())

	count := 0
	sub := bus.Subscribe(TopicAlertMatched, func(ctx context.Context, evt Event) { count++ })

	bus.Publish(context.Background(), TopicAlertMatched, nil)
	sub.Unsubscribe()
	bus.Publish(context.Background(), TopicAlertMatched, nil)

	assert.Equal(t, 1, count)
}

func TestBus_PublishWithoutSubscribersIsNoOp(t *testing.T) {
	bus := NewBus(logger.NewNoOpLogger())

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), TopicTeamSaved, "orphan")
	})
}

func TestBus_UnsubscribeTwiceIsSafe(t *testing.T) {
	bus := NewBus(logger.NewNoOpLogger())

	sub := bus.Subscribe(TopicTeamLiked, func(ctx context.Context, evt Event) {})
	sub.Unsubscribe()

	assert.NotPanics(t, sub.Unsubscribe)
}
