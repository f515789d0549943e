// Package model defines database models
package model

import "time"

type Cloth struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Type string `json:"type"`

	// Price in the smallest currency unit to avoid float rounding
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`

	Storages []Storage `gorm:"foreignKey:ClothID;constraint:OnDelete:CASCADE" json:"storages,omitempty"`
	Buys     []Buy     `gorm:"foreignKey:ClothID" json:"-"`
}
