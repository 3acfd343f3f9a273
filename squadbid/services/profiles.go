package services

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"
)

// Profile is the external directory record for a participant.
type Profile struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ProfileLookup resolves participant IDs to display profiles. The
// directory is external and slow, so callers go through the cached
// wrapper.
type ProfileLookup interface {
	Lookup(ctx context.Context, playerID string) (*Profile, error)
}

// CachedProfiles wraps a ProfileLookup with an LRU cache. Profiles
// change rarely during an auction; a hit saves a directory round trip
// on every snapshot render.
type CachedProfiles struct {
	source ProfileLookup
	cache  *lru.Cache
	log    *slog.Logger
}

func NewCachedProfiles(source ProfileLookup, size int, log *slog.Logger) (*CachedProfiles, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedProfiles{source: source, cache: cache, log: log}, nil
}

func (c *CachedProfiles) Lookup(ctx context.Context, playerID string) (*Profile, error) {
	if v, ok := c.cache.Get(playerID); ok {
		return v.(*Profile), nil
	}

	p, err := c.source.Lookup(ctx, playerID)
	if err != nil {
		return nil, err
	}
	c.cache.Add(playerID, p)

	c.log.Debug("profile cached",
		slog.String("player_id", playerID),
		slog.Int("cache_len", c.cache.Len()))
	return p, nil
}

// Invalidate drops one cached profile.
func (c *CachedProfiles) Invalidate(playerID string) {
	c.cache.Remove(playerID)
}

// EchoProfiles is the fallback directory when no external one is
// configured: the ID is the name.
type EchoProfiles struct{}

func (EchoProfiles) Lookup(_ context.Context, playerID string) (*Profile, error) {
	return &Profile{PlayerID: playerID, Name: playerID}, nil
}
