package domain

import (
	"time"
)

// CREATE TABLE public.outfits (
//     unique_name    TEXT PRIMARY KEY,
//     name           TEXT,
//     preview_image  TEXT,
//     image          TEXT,
//     occasion_id    TEXT,
//     style_id       TEXT,
//     stylist_id     TEXT,
//     total_price    NUMERIC,
//     currency       TEXT,
//     votes_counter  BIGINT DEFAULT 0,
//     created_at     TIMESTAMPTZ DEFAULT NOW(),
//     updated_at     TIMESTAMPTZ DEFAULT NOW()
// );

type Outfit struct {
	UniqueName   string    `gorm:"primaryKey;column:unique_name" json:"unique_name"`
	Name         string    `gorm:"column:name;type:text" json:"name"`
	PreviewImage string    `gorm:"column:preview_image;type:text" json:"preview_image"`
	Image        string    `gorm:"column:image;type:text" json:"image"`
	OccasionID   string    `gorm:"column:occasion_id" json:"occasion_id"`
	StyleID      string    `gorm:"column:style_id" json:"style_id"`
	StylistID    string    `gorm:"column:stylist_id" json:"stylist_id"`
	TotalPrice   float64   `gorm:"column:total_price;type:numeric" json:"total_price"`
	Currency     string    `gorm:"column:currency" json:"currency"`
	VotesCounter int64     `gorm:"column:votes_counter;default:0" json:"votes_counter"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Outfit) TableName() string {
	return "outfits"
}

// CREATE TABLE public.outfit_articles (
//     outfit_id   TEXT NOT NULL,
//     article_id  TEXT NOT NULL,
//     PRIMARY KEY (outfit_id, article_id)
// );

// OutfitArticle links an outfit to one of its articles. The original data
// model embedded the article IDs as an array on the outfit document.
type OutfitArticle struct {
	OutfitID  string `gorm:"primaryKey;column:outfit_id" json:"outfit_id"`
	ArticleID string `gorm:"primaryKey;column:article_id" json:"article_id"`
}

func (OutfitArticle) TableName() string {
	return "outfit_articles"
}

// OutfitView is an outfit resolved with its reference data plus the
// per-viewer upvote decoration. Never persisted.
type OutfitView struct {
	Outfit
	ArticleIDs []string  `json:"article_ids"`
	Occasion   *Occasion `json:"occasion,omitempty"`
	Style      *Style    `json:"style,omitempty"`
	Stylist    *Stylist  `json:"stylist,omitempty"`
	Articles   []Article `json:"articles"`
	IsUpvoted  bool      `json:"is_upvoted"`
}
