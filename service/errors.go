// Package service holds the business logic that sits between the HTTP
// handlers and the database
package service

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrClothNotFound           = errors.New("cloth not found")
	ErrStorageNotFound         = errors.New("storage not found")
	ErrStorageQuantityExceeded = errors.New("storage quantity exceeded")
	ErrBuyNotFound             = errors.New("buy not found")
)
