package models

import (
	"time"

	"github.com/recircle-platform/recircle-backend/pkg/enums"
)

// Item is a surplus-goods listing available for claiming.
type Item struct {
	ID          int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Category    string           `gorm:"column:category;not null" json:"category"`
	Description string           `gorm:"column:description;not null" json:"description"`
	Location    string           `gorm:"column:location;not null" json:"location"`
	Quantity    int              `gorm:"column:quantity;not null" json:"quantity"`
	Status      enums.ItemStatus `gorm:"column:status;not null;default:available" json:"status"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
