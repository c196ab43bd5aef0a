package pubsub

import "testing"

func TestSendDeliversImmediatelyToSubscribers(t *testing.T) {
	bus := New()
	topic := bus.Topic("room:hall")
	var got []any
	topic.Subscribe(func(name string, event any) error {
		got = append(got, event)
		return nil
	})
	topic.Send("hello")
	if len(got) != 1 || got[0] != "hello" {
		t.Errorf("got %v", got)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	topic := bus.Topic("room:hall")
	count := 0
	sub := topic.Subscribe(func(name string, event any) error {
		count++
		return nil
	})
	topic.Send("one")
	sub.Unsubscribe()
	topic.Send("two")
	if count != 1 {
		t.Errorf("got %d deliveries, want 1", count)
	}
}

func TestSyncDeliversQueuedEventsThenClearsQueue(t *testing.T) {
	bus := New()
	topic := bus.Topic("driver.tick")
	var got []any
	topic.Subscribe(func(name string, event any) error {
		got = append(got, event)
		return nil
	})
	topic.Defer("a")
	topic.Defer("b")
	if err := topic.Sync(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v", got)
	}
	got = nil
	if err := topic.Sync(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("second sync with nothing deferred should deliver nothing, got %v", got)
	}
}

func TestNotYetDropsEventFromCurrentPassOnly(t *testing.T) {
	bus := New()
	topic := bus.Topic("driver.tick")
	calls := 0
	topic.Subscribe(func(name string, event any) error {
		calls++
		return ErrNotYet
	})
	topic.Defer("event")
	topic.Sync()
	if calls != 1 {
		t.Fatalf("expected one delivery attempt, got %d", calls)
	}
	// a second Sync with nothing newly deferred must not redeliver the
	// NotYet'd event - it was dropped, not requeued.
	topic.Sync()
	if calls != 1 {
		t.Errorf("NotYet must not cause the event to be retried on the next Sync, got %d calls", calls)
	}
}

func TestWiretapTopicNaming(t *testing.T) {
	if WiretapTopic("max") != "wiretap:max" {
		t.Errorf("got %q", WiretapTopic("max"))
	}
}
