package service

import (
	"arkan22/cloth-api/model"
	"arkan22/cloth-api/validators"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type CreateBuyRequest struct {
	UserID        string
	ClothID       uint
	Quantity      int
	PaymentMethod string
}

// PrimaryStorage resolves the stock record purchases are served from.
// A cloth can own several storage rows; the one with the lowest ID is
// treated as primary so the selection stays deterministic.
func PrimaryStorage(db *gorm.DB, clothID uint) (*model.Storage, error) {
	var storage model.Storage

	err := db.
		Where("cloth_id = ?", clothID).
		Order("id asc").
		First(&storage).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStorageNotFound
		}

		return nil, fmt.Errorf("resolve storage: %w", err)
	}

	return &storage, nil
}

// decrementStorage takes qty units off a storage row. The condition on
// quantity_limit makes the decrement atomic, so two overlapping purchases
// can't both pass a stale pre-check and oversell the row.
func decrementStorage(tx *gorm.DB, storageID uint, qty int) error {
	res := tx.
		Model(model.Storage{}).
		Where("id = ? AND quantity_limit >= ?", storageID, qty).
		Update("quantity_limit", gorm.Expr("quantity_limit - ?", qty))
	if res.Error != nil {
		return fmt.Errorf("decrement storage: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrStorageQuantityExceeded
	}

	return nil
}

func restoreStorage(tx *gorm.DB, storageID uint, qty int) error {
	err := tx.
		Model(model.Storage{}).
		Where("id = ?", storageID).
		Update("quantity_limit", gorm.Expr("quantity_limit + ?", qty)).
		Error
	if err != nil {
		return fmt.Errorf("restore storage: %w", err)
	}

	return nil
}

// CreateBuy records a purchase and takes the requested quantity off the
// cloth's primary storage. Both writes happen in one transaction, so a
// failed decrement never leaves a dangling buy record. Payment and
// confirmation status always start at 0 regardless of client input.
func CreateBuy(db *gorm.DB, req *CreateBuyRequest) (*model.Buy, error) {
	if err := validators.QuantityValidator(req.Quantity); err != nil {
		return nil, err
	}

	if err := validators.PaymentMethodValidator(req.PaymentMethod); err != nil {
		return nil, err
	}

	var cloth model.Cloth
	if err := db.First(&cloth, req.ClothID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClothNotFound
		}

		return nil, fmt.Errorf("find cloth: %w", err)
	}

	storage, err := PrimaryStorage(db, cloth.ID)
	if err != nil {
		return nil, err
	}

	if storage.QuantityLimit < req.Quantity {
		return nil, ErrStorageQuantityExceeded
	}

	buy := &model.Buy{
		UserID:             req.UserID,
		ClothID:            cloth.ID,
		Quantity:           req.Quantity,
		PaymentMethod:      req.PaymentMethod,
		PaymentStatus:      model.PaymentUnpaid,
		ConfirmationStatus: model.ConfirmationPending,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := decrementStorage(tx, storage.ID, req.Quantity); err != nil {
			return err
		}

		return tx.Create(buy).Error
	})
	if err != nil {
		if errors.Is(err, ErrStorageQuantityExceeded) {
			return nil, err
		}

		return nil, fmt.Errorf("create buy: %w", err)
	}

	// The conditional decrement above should make this impossible, but
	// re-read the row so a broken migration or manual edit can't hide
	// a negative stock count.
	var after model.Storage
	if err := db.First(&after, storage.ID).Error; err == nil && after.QuantityLimit < 0 {
		return nil, ErrStorageQuantityExceeded
	}

	return buy, nil
}

type EditBuyRequest struct {
	Quantity           *int
	PaymentMethod      *string
	PaymentStatus      *int
	ConfirmationStatus *int
}

// EditBuy applies a partial update to a buy record. A quantity change is
// reconciled against the cloth's primary storage: raising it takes the
// extra units off the stock, lowering it gives them back.
func EditBuy(db *gorm.DB, id uint, req *EditBuyRequest) (*model.Buy, error) {
	if req.Quantity != nil {
		if err := validators.QuantityValidator(*req.Quantity); err != nil {
			return nil, err
		}
	}

	if req.PaymentMethod != nil {
		if err := validators.PaymentMethodValidator(*req.PaymentMethod); err != nil {
			return nil, err
		}
	}

	if req.PaymentStatus != nil {
		if err := validators.PaymentStatusValidator(*req.PaymentStatus); err != nil {
			return nil, err
		}
	}

	if req.ConfirmationStatus != nil {
		if err := validators.ConfirmationStatusValidator(*req.ConfirmationStatus); err != nil {
			return nil, err
		}
	}

	var buy model.Buy
	if err := db.First(&buy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuyNotFound
		}

		return nil, fmt.Errorf("find buy: %w", err)
	}

	updates := map[string]any{}

	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}

	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}

	if req.ConfirmationStatus != nil {
		updates["confirmation_status"] = *req.ConfirmationStatus
	}

	delta := 0
	if req.Quantity != nil {
		delta = *req.Quantity - buy.Quantity
		updates["quantity"] = *req.Quantity
	}

	if len(updates) == 0 {
		return &buy, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if delta != 0 {
			storage, err := PrimaryStorage(tx, buy.ClothID)
			if err != nil {
				return err
			}

			if delta > 0 {
				if err := decrementStorage(tx, storage.ID, delta); err != nil {
					return err
				}
			} else {
				if err := restoreStorage(tx, storage.ID, -delta); err != nil {
					return err
				}
			}
		}

		return tx.Model(&buy).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, ErrStorageQuantityExceeded) || errors.Is(err, ErrStorageNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("edit buy: %w", err)
	}

	return &buy, nil
}

// ConfirmPayment marks a buy as paid. Confirming an already-paid buy is a
// no-op, not an error.
func ConfirmPayment(db *gorm.DB, id uint) (*model.Buy, error) {
	var buy model.Buy
	if err := db.First(&buy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuyNotFound
		}

		return nil, fmt.Errorf("find buy: %w", err)
	}

	err := db.
		Model(&buy).
		Update("payment_status", model.PaymentPaid).
		Error
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	return &buy, nil
}

// DeleteBuy removes a purchase and hands its quantity back to the cloth's
// primary storage. A buy whose storage rows were deleted in the meantime
// is still removed, there is just nothing left to restore into.
func DeleteBuy(db *gorm.DB, id uint) error {
	var buy model.Buy
	if err := db.First(&buy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBuyNotFound
		}

		return fmt.Errorf("find buy: %w", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&buy).Error; err != nil {
			return err
		}

		storage, err := PrimaryStorage(tx, buy.ClothID)
		if err != nil {
			if errors.Is(err, ErrStorageNotFound) {
				return nil
			}

			return err
		}

		return restoreStorage(tx, storage.ID, buy.Quantity)
	})
	if err != nil {
		return fmt.Errorf("delete buy: %w", err)
	}

	return nil
}

// GetBuy fetches a single buy record by its ID.
func GetBuy(db *gorm.DB, id uint) (*model.Buy, error) {
	var buy model.Buy
	if err := db.First(&buy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuyNotFound
		}

		return nil, fmt.Errorf("find buy: %w", err)
	}

	return &buy, nil
}
