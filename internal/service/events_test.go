package service

import (
	"testing"

	"github.com/bnema/standup/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEventBus_PublishReachesOnlyThatJob(t *testing.T) {
	bus := NewEventBus()
	a := bus.Subscribe("job-a")
	b := bus.Subscribe("job-b")

	bus.Publish("job-a", Event{JobID: "job-a", Status: domain.JobStatusProcessing})

	select {
	case ev := <-a:
		assert.Equal(t, domain.JobStatusProcessing, ev.Status)
	default:
		t.Fatal("subscriber of job-a got nothing")
	}
	select {
	case <-b:
		t.Fatal("subscriber of job-b must not be woken")
	default:
	}
}

func TestEventBus_PublishDropsWhenFull(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe("job")

	for i := 0; i < 20; i++ {
		bus.Publish("job", Event{JobID: "job"})
	}

	assert.Len(t, ch, cap(ch))
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe("job")
	other := bus.Subscribe("job")

	bus.Unsubscribe("job", ch)

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 1, bus.subscriberCount("job"))

	bus.Unsubscribe("job", other)
	assert.Equal(t, 0, bus.subscriberCount("job"))

	bus.Publish("job", Event{JobID: "job"})
}
