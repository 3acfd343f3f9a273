package engine

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

// OrderPlayers returns the players in presentation order for the given
// policy. The input slice is not modified. Random order draws from rng
// so the permutation is fixed at freeze time and never recomputed; the
// other policies are deterministic and use stable ties on entry order.
func OrderPlayers(orderType models.PlayerOrderType, players []*models.AuctionPlayer, rng *rand.Rand) []*models.AuctionPlayer {
	out := make([]*models.AuctionPlayer, len(players))
	copy(out, players)

	switch orderType {
	case models.OrderBasePriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].BasePrice > out[j].BasePrice
		})
	case models.OrderBasePriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].BasePrice < out[j].BasePrice
		})
	case models.OrderAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].PlayerName) < strings.ToLower(out[j].PlayerName)
		})
	case models.OrderRandom:
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	return out
}

// NextNavigable picks the player after current in display order among
// candidates, wrapping past the end. With no current player it returns
// the first candidate. Returns nil when candidates is empty.
func NextNavigable(candidates []*models.AuctionPlayer, current *models.AuctionPlayer) *models.AuctionPlayer {
	if len(candidates) == 0 {
		return nil
	}
	if current == nil {
		return candidates[0]
	}
	for _, p := range candidates {
		if p.DisplayOrder > current.DisplayOrder {
			return p
		}
	}
	return candidates[0]
}

// PrevNavigable is the mirror of NextNavigable, wrapping past the start.
func PrevNavigable(candidates []*models.AuctionPlayer, current *models.AuctionPlayer) *models.AuctionPlayer {
	if len(candidates) == 0 {
		return nil
	}
	if current == nil {
		return candidates[len(candidates)-1]
	}
	for i := len(candidates) - 1; i >= 0; i-- {
		if candidates[i].DisplayOrder < current.DisplayOrder {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}
