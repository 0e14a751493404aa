package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe(func(ctx context.Context, e Event) error {
		got = append(got, "a:"+e.Name())
		return nil
	})
	bus.Subscribe(func(ctx context.Context, e Event) error {
		got = append(got, "b:"+e.Name())
		return nil
	})

	bus.Publish(context.Background(), ProjectShared{ProjectID: "p1"})

	assert.Equal(t, []string{"a:project_shared", "b:project_shared"}, got)
}

func TestBus_SubscriberFailureDoesNotStopDispatch(t *testing.T) {
	bus := NewBus()

	var reached bool
	bus.Subscribe(func(ctx context.Context, e Event) error {
		return errors.New("sink unavailable")
	})
	bus.Subscribe(func(ctx context.Context, e Event) error {
		panic("broken subscriber")
	})
	bus.Subscribe(func(ctx context.Context, e Event) error {
		reached = true
		return nil
	})

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), MessageSent{MessageID: "msg-1"})
	})
	assert.True(t, reached)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), ProjectStatusChanged{ProjectID: "p1"})
	})
}
