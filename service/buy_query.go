package service

import (
	"arkan22/cloth-api/model"
	"arkan22/cloth-api/validators"
	"fmt"

	"gorm.io/gorm"
)

// BuysPerPage matches the fixed page size used by the listing views.
const BuysPerPage = 10

// BuyFilter narrows a buy listing. Nil fields are skipped, UserID == ""
// means no user scoping.
type BuyFilter struct {
	UserID             string
	PaymentMethod      *string
	PaymentStatus      *int
	ConfirmationStatus *int
	Page               int
}

// BuyPage carries one page of results plus the metadata a client needs to
// render pagination controls.
type BuyPage struct {
	Buys     []model.Buy `json:"buys"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PerPage  int         `json:"per_page"`
	LastPage int         `json:"last_page"`
}

// ListBuys returns buys matching the filter in insertion order, paginated
// with a fixed page size and a 1-based page number.
func ListBuys(db *gorm.DB, f *BuyFilter) (*BuyPage, error) {
	if f.PaymentStatus != nil {
		if err := validators.PaymentStatusValidator(*f.PaymentStatus); err != nil {
			return nil, err
		}
	}

	if f.ConfirmationStatus != nil {
		if err := validators.ConfirmationStatusValidator(*f.ConfirmationStatus); err != nil {
			return nil, err
		}
	}

	page := f.Page
	if page < 1 {
		page = 1
	}

	q := db.Model(model.Buy{})

	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}

	if f.PaymentMethod != nil {
		q = q.Where("payment_method = ?", *f.PaymentMethod)
	}

	if f.PaymentStatus != nil {
		q = q.Where("payment_status = ?", *f.PaymentStatus)
	}

	if f.ConfirmationStatus != nil {
		q = q.Where("confirmation_status = ?", *f.ConfirmationStatus)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count buys: %w", err)
	}

	var buys []model.Buy
	err := q.
		Order("id asc").
		Offset((page - 1) * BuysPerPage).
		Limit(BuysPerPage).
		Find(&buys).
		Error
	if err != nil {
		return nil, fmt.Errorf("list buys: %w", err)
	}

	lastPage := int((total + BuysPerPage - 1) / BuysPerPage)
	if lastPage < 1 {
		lastPage = 1
	}

	return &BuyPage{
		Buys:     buys,
		Total:    total,
		Page:     page,
		PerPage:  BuysPerPage,
		LastPage: lastPage,
	}, nil
}
