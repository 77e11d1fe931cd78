package domain

import (
	"time"
)

// CREATE TABLE public.occasions (
//     unique_name    TEXT PRIMARY KEY,
//     name           TEXT,
//     preview_image  TEXT,
//     created_at     TIMESTAMPTZ DEFAULT NOW(),
//     updated_at     TIMESTAMPTZ DEFAULT NOW()
// );

type Occasion struct {
	UniqueName   string    `gorm:"primaryKey;column:unique_name" json:"unique_name"`
	Name         string    `gorm:"column:name;type:text" json:"name"`
	PreviewImage string    `gorm:"column:preview_image;type:text" json:"preview_image"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Occasion) TableName() string {
	return "occasions"
}
