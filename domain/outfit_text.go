package domain

import (
	"time"
)

// CREATE TABLE public.outfit_texts (
//     outfit_id    TEXT PRIMARY KEY,
//     search_text  TEXT,
//     created_at   TIMESTAMPTZ DEFAULT NOW(),
//     updated_at   TIMESTAMPTZ DEFAULT NOW()
// );
// CREATE INDEX idx_outfit_texts_fts ON public.outfit_texts
//     USING GIN (to_tsvector('simple', search_text));

// OutfitText is the denormalized full-text search row for one outfit. It is
// rebuilt whenever the outfit or its reference data is written.
type OutfitText struct {
	OutfitID   string    `gorm:"primaryKey;column:outfit_id" json:"outfit_id"`
	SearchText string    `gorm:"column:search_text;type:text" json:"search_text"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (OutfitText) TableName() string {
	return "outfit_texts"
}
