package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/semaphore"
)

// KeyedLocks serializes work per key. Every mutating transition for a
// player (and every ledger move for a team) runs under the key's lock,
// so two requests for the same player never interleave while requests
// for different players proceed in parallel.
//
// Acquisition is bounded: a caller that cannot enter within wait gets a
// LOCK_TIMEOUT refusal instead of queueing forever behind a stuck
// transaction.
type KeyedLocks struct {
	locks *xsync.MapOf[string, *semaphore.Weighted]
	wait  time.Duration
}

func NewKeyedLocks(wait time.Duration) *KeyedLocks {
	return &KeyedLocks{
		locks: xsync.NewMapOf[string, *semaphore.Weighted](),
		wait:  wait,
	}
}

// Acquire enters the critical section for key. The returned release
// function must be called exactly once.
func (k *KeyedLocks) Acquire(ctx context.Context, key string) (func(), *Error) {
	sem, _ := k.locks.LoadOrCompute(key, func() *semaphore.Weighted {
		return semaphore.NewWeighted(1)
	})

	acquireCtx, cancel := context.WithTimeout(ctx, k.wait)
	defer cancel()

	if err := sem.Acquire(acquireCtx, 1); err != nil {
		return nil, refusal(CodeLockTimeout,
			"could not enter critical section for %s within %s", key, k.wait)
	}
	return func() { sem.Release(1) }, nil
}

// PlayerKey and TeamKey name the two serialization domains. A sale
// takes both, always player first, so the lock order is total and
// deadlock free.
func PlayerKey(auctionID, playerID int64) string {
	return fmt.Sprintf("player:%d:%d", auctionID, playerID)
}

func TeamKey(auctionID, teamID int64) string {
	return fmt.Sprintf("team:%d:%d", auctionID, teamID)
}

// AuctionKey serializes whole-auction transitions such as status
// changes and navigation.
func AuctionKey(auctionID int64) string {
	return fmt.Sprintf("auction:%d", auctionID)
}
