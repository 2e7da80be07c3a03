package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// NopCache never hits; used when Redis is not configured.
type NopCache struct{}

func (NopCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (NopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (NopCache) Del(context.Context, ...string) error                      { return nil }

// GitHubSkillsKey is the key for a user's discovered GitHub skills.
func GitHubSkillsKey(username string) string {
	return "github:skills:" + username
}
