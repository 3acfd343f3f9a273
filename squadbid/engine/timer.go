package engine

import (
	"sync"
	"time"
)

// Timer runs the advisory per-player countdown. One countdown exists
// per auction at a time; presenting a new player or accepting a bid
// restarts it. Expiry only broadcasts, it never sells or skips anyone,
// the host stays in charge of the hammer.
type Timer struct {
	mu          sync.Mutex
	broadcaster *Broadcaster
	countdowns  map[int64]*countdown
}

type countdown struct {
	stop chan struct{}
}

func NewTimer(broadcaster *Broadcaster) *Timer {
	return &Timer{
		broadcaster: broadcaster,
		countdowns:  make(map[int64]*countdown),
	}
}

// Start begins (or restarts) the countdown for an auction. seconds <= 0
// disables the timer entirely.
func (t *Timer) Start(auctionID int64, playerID int64, seconds int) {
	t.Stop(auctionID)
	if seconds <= 0 {
		return
	}

	cd := &countdown{stop: make(chan struct{})}
	t.mu.Lock()
	t.countdowns[auctionID] = cd
	t.mu.Unlock()

	go t.run(auctionID, playerID, seconds, cd.stop)
}

// Stop cancels the running countdown for an auction, if any.
func (t *Timer) Stop(auctionID int64) {
	t.mu.Lock()
	if cd, ok := t.countdowns[auctionID]; ok {
		close(cd.stop)
		delete(t.countdowns, auctionID)
	}
	t.mu.Unlock()
}

func (t *Timer) run(auctionID, playerID int64, seconds int, stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	remaining := seconds
	t.publish(auctionID, playerID, remaining)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			remaining--
			t.publish(auctionID, playerID, remaining)
			if remaining <= 0 {
				t.mu.Lock()
				if cd, ok := t.countdowns[auctionID]; ok && cd.stop == stop {
					delete(t.countdowns, auctionID)
				}
				t.mu.Unlock()
				return
			}
		}
	}
}

func (t *Timer) publish(auctionID, playerID int64, remaining int) {
	t.broadcaster.Publish(auctionID, EventTimer, map[string]any{
		"player_id": playerID,
		"remaining": remaining,
		"expired":   remaining <= 0,
	})
}
