package engine

import (
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestBroadcaster_PublishReachesSubscriber(t *testing.T) {
	b := NewBroadcaster(discardLogger())

	events, cancel := b.Subscribe(1)
	defer cancel()

	b.Publish(1, EventBids, map[string]any{"player_id": int64(7)})

	select {
	case ev := <-events:
		if ev.Type != EventBids || ev.AuctionID != 1 || ev.Seq != 1 {
			t.Errorf("got event %+v, want bids event seq 1 for auction 1", ev)
		}
		if ev.ID == "" {
			t.Error("event ID is empty")
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestBroadcaster_SequenceIncreasesPerAuction(t *testing.T) {
	b := NewBroadcaster(discardLogger())

	events, cancel := b.Subscribe(1)
	defer cancel()
	other, cancelOther := b.Subscribe(2)
	defer cancelOther()

	b.Publish(1, EventBids, nil)
	b.Publish(2, EventTeams, nil)
	b.Publish(1, EventPlayers, nil)

	first, second := <-events, <-events
	if first.Seq != 1 || second.Seq != 2 {
		t.Errorf("auction 1 seqs = %d, %d, want 1, 2", first.Seq, second.Seq)
	}

	ev := <-other
	if ev.Seq != 1 {
		t.Errorf("auction 2 seq = %d, want its own counter starting at 1", ev.Seq)
	}
}

func TestBroadcaster_OtherAuctionsNotDelivered(t *testing.T) {
	b := NewBroadcaster(discardLogger())

	events, cancel := b.Subscribe(1)
	defer cancel()

	b.Publish(2, EventBids, nil)

	select {
	case ev := <-events:
		t.Errorf("received event for wrong auction: %+v", ev)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestBroadcaster_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	b := NewBroadcaster(discardLogger())

	_, cancel := b.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Nobody drains; publishing past the buffer must still return.
		for i := 0; i < subscriberBuffer+10; i++ {
			b.Publish(1, EventTimer, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber buffer")
	}
}

func TestBroadcaster_SubscriberCount(t *testing.T) {
	b := NewBroadcaster(discardLogger())

	_, cancel1 := b.Subscribe(1)
	_, cancel2 := b.Subscribe(1)
	_, cancel3 := b.Subscribe(2)
	defer cancel3()

	if got := b.SubscriberCount(1); got != 2 {
		t.Errorf("SubscriberCount(1) = %d, want 2", got)
	}

	cancel1()
	cancel2()
	cancel2() // double cancel is safe

	if got := b.SubscriberCount(1); got != 0 {
		t.Errorf("SubscriberCount(1) after cancel = %d, want 0", got)
	}
	if got := b.SubscriberCount(2); got != 1 {
		t.Errorf("SubscriberCount(2) = %d, want 1", got)
	}
}

func TestTimer_PublishesCountdown(t *testing.T) {
	b := NewBroadcaster(discardLogger())
	timer := NewTimer(b)

	events, cancel := b.Subscribe(1)
	defer cancel()

	timer.Start(1, 7, 2)
	defer timer.Stop(1)

	select {
	case ev := <-events:
		if ev.Type != EventTimer {
			t.Fatalf("event type = %s, want timer", ev.Type)
		}
		if ev.Payload["remaining"] != 2 {
			t.Errorf("remaining = %v, want 2", ev.Payload["remaining"])
		}
	case <-time.After(time.Second):
		t.Fatal("no timer event received")
	}
}

func TestTimer_StopEndsCountdown(t *testing.T) {
	b := NewBroadcaster(discardLogger())
	timer := NewTimer(b)

	events, cancel := b.Subscribe(1)
	defer cancel()

	timer.Start(1, 7, 60)
	<-events // initial tick
	timer.Stop(1)

	// Drain anything in flight, then expect silence.
	time.Sleep(50 * time.Millisecond)
	for {
		select {
		case <-events:
		default:
			goto drained
		}
	}
drained:
	select {
	case ev := <-events:
		t.Errorf("received event after Stop: %+v", ev)
	case <-time.After(1200 * time.Millisecond):
	}
}

func TestTimer_ZeroSecondsDisables(t *testing.T) {
	b := NewBroadcaster(discardLogger())
	timer := NewTimer(b)

	events, cancel := b.Subscribe(1)
	defer cancel()

	timer.Start(1, 7, 0)

	select {
	case ev := <-events:
		t.Errorf("received event with timer disabled: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
