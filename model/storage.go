package model

import "time"

// Storage is a per-cloth stock record. QuantityLimit is the number of
// units still sellable and must never go below zero.
type Storage struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ClothID  uint   `gorm:"index;not null" json:"cloth_id"`
	Location string `json:"location"`

	QuantityLimit int       `gorm:"not null;default:0" json:"quantity_limit"`
	CreatedAt     time.Time `json:"created_at"`
}
