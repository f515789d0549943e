package model

import "time"

const (
	PaymentUnpaid = 0
	PaymentPaid   = 1
)

// Confirmation status is tri-state: 0 pending, 1 confirmed, 2 rejected
const (
	ConfirmationPending  = 0
	ConfirmationAccepted = 1
	ConfirmationRejected = 2
)

// Buy links a user and a cloth with payment metadata. New records always
// start unpaid and unconfirmed no matter what the client sends.
type Buy struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string `gorm:"index" json:"user_id"`
	ClothID uint   `gorm:"index;not null" json:"cloth_id"`

	Quantity           int       `gorm:"not null" json:"quantity"`
	PaymentMethod      string    `gorm:"not null" json:"payment_method"`
	PaymentStatus      int       `gorm:"default:0" json:"payment_status"`
	ConfirmationStatus int       `gorm:"default:0" json:"confirmation_status"`
	CreatedAt          time.Time `json:"created_at"`
}
