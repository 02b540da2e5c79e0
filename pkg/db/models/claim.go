package models

import "time"

// Claim links one claimed item to the partner that took it. Rows are written
// exactly once by the claim engine and never mutated afterwards.
type Claim struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemID    int64     `gorm:"column:item_id;not null;index" json:"item_id"`
	PartnerID int64     `gorm:"column:partner_id;not null;index" json:"partner_id"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`

	Item    *Item    `gorm:"foreignKey:ItemID" json:"-"`
	Partner *Partner `gorm:"foreignKey:PartnerID" json:"-"`
}
