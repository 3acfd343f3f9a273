package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType names a broadcast channel. Consumers treat each type as an
// instruction to refetch the named resource; payloads are hints, not
// the source of truth.
type EventType string

const (
	EventAuction EventType = "auction"
	EventTeams   EventType = "auction_teams"
	EventPlayers EventType = "auction_players"
	EventBids    EventType = "auction_bids"
	EventTimer   EventType = "timer"
)

// Event is one broadcast message. Seq increases per auction in commit
// order, so a consumer can detect gaps and resync with a snapshot.
type Event struct {
	ID        string         `json:"id"`
	AuctionID int64          `json:"auction_id"`
	Type      EventType      `json:"type"`
	Seq       uint64         `json:"seq"`
	At        time.Time      `json:"at"`
	Payload   map[string]any `json:"payload,omitempty"`
}

type subscriber struct {
	ch        chan Event
	auctionID int64
}

// Broadcaster fans events out to SSE subscribers. Publishing never
// blocks: a subscriber whose buffer is full misses the event and is
// expected to resync from the Seq gap.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
	seq  map[int64]uint64
	log  *slog.Logger
}

func NewBroadcaster(log *slog.Logger) *Broadcaster {
	return &Broadcaster{
		subs: make(map[*subscriber]struct{}),
		seq:  make(map[int64]uint64),
		log:  log,
	}
}

const subscriberBuffer = 32

// Subscribe registers a consumer for one auction's events. The caller
// must drain the channel and call the returned cancel function when
// done; cancel closes the channel.
func (b *Broadcaster) Subscribe(auctionID int64) (<-chan Event, func()) {
	sub := &subscriber{
		ch:        make(chan Event, subscriberBuffer),
		auctionID: auctionID,
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[sub]; ok {
			delete(b.subs, sub)
			close(sub.ch)
		}
		b.mu.Unlock()
	}
	return sub.ch, cancel
}

// Publish emits one event to every subscriber of the auction. Call it
// only after the transaction producing the change has committed.
func (b *Broadcaster) Publish(auctionID int64, typ EventType, payload map[string]any) {
	b.mu.Lock()
	b.seq[auctionID]++
	ev := Event{
		ID:        uuid.NewString(),
		AuctionID: auctionID,
		Type:      typ,
		Seq:       b.seq[auctionID],
		At:        time.Now(),
		Payload:   payload,
	}

	for sub := range b.subs {
		if sub.auctionID != auctionID {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			b.log.Warn("dropping event for slow subscriber",
				slog.Int64("auction_id", auctionID),
				slog.String("event_type", string(typ)),
				slog.Uint64("seq", ev.Seq))
		}
	}
	b.mu.Unlock()
}

// SubscriberCount reports live subscribers for an auction.
func (b *Broadcaster) SubscriberCount(auctionID int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for sub := range b.subs {
		if sub.auctionID == auctionID {
			n++
		}
	}
	return n
}
