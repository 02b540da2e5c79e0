package models

import "time"

// Partner is an organization entitled to claim items and accrue points.
// Points only ever grow; each successful claim credits a fixed award.
type Partner struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Location     string    `gorm:"column:location;not null" json:"location"`
	Points       int       `gorm:"column:points;not null;default:0" json:"points"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Username     string    `gorm:"column:username" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
