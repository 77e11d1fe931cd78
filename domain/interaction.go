package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Interaction actions. The spelling matches what the frontend sends.
const (
	ActionOutfitUpvote        = "outfitUpvote"
	ActionOutfitOpen          = "outfitOpen"
	ActionOutfitBuy           = "outfitBuy"
	ActionOutfitShowTime      = "outfitShowTime"
	ActionOutfitZoomShowTime  = "outfitZoomShowTime"
	ActionOutfitSearch        = "outfitSearch"
	ActionOccasionOpen        = "occasionOpen"
	ActionStyleOpen           = "styleOpen"
	ActionArticleOpen         = "articleOpen"
	ActionArticleBuy          = "articleBuy"
	ActionArticleZoomShowTime = "articleZoomShowTime"
	ActionInspirationSort     = "inspirationSort"
	ActionSearchSort          = "searchSort"
)

// CREATE TABLE public.interactions (
//     id             TEXT PRIMARY KEY,
//     user_id        TEXT NOT NULL,
//     action         TEXT NOT NULL,
//     outfit_id      TEXT,
//     occasion_id    TEXT,
//     style_id       TEXT,
//     article_id     TEXT,
//     show_time_ms   BIGINT,
//     payload        JSONB,
//     created_at     TIMESTAMPTZ DEFAULT NOW(),
//     updated_at     TIMESTAMPTZ DEFAULT NOW()
// );
// CREATE UNIQUE INDEX uq_interactions_upvote ON public.interactions (user_id, outfit_id)
//     WHERE action = 'outfitUpvote';
// CREATE INDEX idx_interactions_user_action ON public.interactions (user_id, action, created_at DESC);

type Interaction struct {
	ID         string            `gorm:"primaryKey;column:id" json:"id"`
	UserID     string            `gorm:"column:user_id" json:"user_id"`
	Action     string            `gorm:"column:action" json:"action"`
	OutfitID   string            `gorm:"column:outfit_id" json:"outfit_id,omitempty"`
	OccasionID string            `gorm:"column:occasion_id" json:"occasion_id,omitempty"`
	StyleID    string            `gorm:"column:style_id" json:"style_id,omitempty"`
	ArticleID  string            `gorm:"column:article_id" json:"article_id,omitempty"`
	ShowTimeMs int64             `gorm:"column:show_time_ms" json:"show_time_ms,omitempty"`
	Payload    datatypes.JSONMap `gorm:"column:payload" json:"payload,omitempty"`
	CreatedAt  time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}

// Payload keys used by the search and sort actions.
const (
	PayloadFilterBy = "filterBy"
	PayloadSearchBy = "searchBy"
	PayloadOrderBy  = "orderBy"
)
