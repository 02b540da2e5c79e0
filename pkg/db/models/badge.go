package models

import "time"

// Badge is an achievement record for a partner. Badges are seeded; nothing in
// the claim path recalculates them.
type Badge struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PartnerID   int64      `gorm:"column:partner_id;not null;index" json:"partner_id"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	Description string     `gorm:"column:description;not null" json:"description"`
	Earned      bool       `gorm:"column:earned;not null;default:false" json:"earned"`
	EarnedAt    *time.Time `gorm:"column:earned_at" json:"earned_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
