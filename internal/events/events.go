package events

import (
	"context"
	"time"

	"github.com/yoockh/skillbridge/internal/models"
)

// SkillsUpdated is emitted after a resume upload settled a user's skill profile.
type SkillsUpdated struct {
	UserID  string         `json:"user_id"`
	FileURL string         `json:"file_url"`
	Skills  []models.Skill `json:"skills"`
	Cached  bool           `json:"cached"`
	At      time.Time      `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev SkillsUpdated) error
	Close() error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, SkillsUpdated) error { return nil }
func (NopPublisher) Close() error                                 { return nil }
