package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.articles (
//     unique_name    TEXT PRIMARY KEY,
//     name           TEXT,
//     details        TEXT,
//     preview_image  TEXT,
//     brand          TEXT,
//     color          TEXT,
//     wearability    TEXT,
//     price          NUMERIC,
//     currency       TEXT,
//     sizes          JSONB,
//     created_at     TIMESTAMPTZ DEFAULT NOW(),
//     updated_at     TIMESTAMPTZ DEFAULT NOW()
// );

type Article struct {
	UniqueName   string            `gorm:"primaryKey;column:unique_name" json:"unique_name"`
	Name         string            `gorm:"column:name;type:text" json:"name"`
	Details      string            `gorm:"column:details;type:text" json:"details"`
	PreviewImage string            `gorm:"column:preview_image;type:text" json:"preview_image"`
	Brand        string            `gorm:"column:brand" json:"brand"`
	Color        string            `gorm:"column:color" json:"color"`
	Wearability  string            `gorm:"column:wearability" json:"wearability"`
	Price        float64           `gorm:"column:price;type:numeric" json:"price"`
	Currency     string            `gorm:"column:currency" json:"currency"`
	Sizes        datatypes.JSONMap `gorm:"column:sizes" json:"sizes,omitempty"`
	CreatedAt    time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}
