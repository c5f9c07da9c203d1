package eventbus

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, b EventBus, eventType EventType) (func() []DomainEvent, func()) {
	t.Helper()
	var (
		mu  sync.Mutex
		got []DomainEvent
	)
	unsubscribe := b.Subscribe(eventType, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	})
	return func() []DomainEvent {
		mu.Lock()
		defer mu.Unlock()
		out := make([]DomainEvent, len(got))
		copy(out, got)
		return out
	}, unsubscribe
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	events, _ := collect(t, b, EventExportCompleted)
	b.Publish(ExportCompletedEvent{Path: "a.json"})
	b.Publish(ExportCompletedEvent{Path: "b.json"})
	b.Publish(StateSavedEvent{Notes: 3})

	require.Eventually(t, func() bool { return len(events()) == 2 }, time.Second, 5*time.Millisecond)
	got := events()
	assert.Equal(t, "a.json", got[0].(ExportCompletedEvent).Path)
	assert.Equal(t, "b.json", got[1].(ExportCompletedEvent).Path)
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New()
	defer b.Close()

	first, unsubscribe := collect(t, b, EventSaveFailed)
	second, _ := collect(t, b, EventSaveFailed)
	unsubscribe()

	b.Publish(SaveFailedEvent{Err: errors.New("disk full")})

	require.Eventually(t, func() bool { return len(second()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, first())
}

func TestPanickingHandlerDoesNotStopDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	events, _ := collect(t, b, EventError)

	b.Publish(ErrorEvent{Message: "x"})
	b.Publish(ErrorEvent{Message: "y"})

	require.Eventually(t, func() bool { return len(events()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	events, _ := collect(t, b, EventStateSaved)
	b.Close()
	b.Close()

	b.Publish(StateSavedEvent{})
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, events())
}
