package model

import "time"

// RoleCustomer is the default role. Anything else counts as admin/staff.
const RoleCustomer = 0

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	Number       string `gorm:"unique;not null" json:"number"`
	PasswordHash string `gorm:"not null" json:"-"`
	Address      string `json:"address"`
	Role         int    `gorm:"default:0" json:"role"`

	// Nil until the verification link has been used
	VerifiedAt *time.Time `json:"verified_at"`
	CreatedAt  time.Time  `json:"created_at"`

	VerificationTokens []VerificationToken `gorm:"foreignKey:UserID" json:"-"`
	Buys               []Buy               `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role != RoleCustomer
}
