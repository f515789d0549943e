package api

import (
	"arkan22/cloth-api/model"
	"arkan22/cloth-api/service"
	"arkan22/cloth-api/validators"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type buyAddBody struct {
	UserID        string `json:"user_id"`
	ClothID       uint   `json:"cloth_id"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"payment_method"`

	// Accepted for compatibility but ignored, new buys always start at 0
	PaymentStatus      *int `json:"payment_status"`
	ConfirmationStatus *int `json:"confirmation_status"`
}

func (a *API) BuyAdd(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)
	role := c.MustGet("userRole").(int)

	var data buyAddBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Only staff may record a purchase on someone else's behalf
	buyer := userID
	if data.UserID != "" && role != model.RoleCustomer {
		buyer = data.UserID
	}

	buy, err := service.CreateBuy(a.DB, &service.CreateBuyRequest{
		UserID:        buyer,
		ClothID:       data.ClothID,
		Quantity:      data.Quantity,
		PaymentMethod: data.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrQuantityTooSmall),
			errors.Is(err, validators.ErrPaymentMethodEmpty):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrClothNotFound),
			errors.Is(err, service.ErrStorageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrStorageQuantityExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Storage quantity exceeded",
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to create buy", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"buy": buy,
	})
}
