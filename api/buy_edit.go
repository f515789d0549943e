package api

import (
	"arkan22/cloth-api/service"
	"arkan22/cloth-api/validators"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type buyEditBody struct {
	Quantity           *int    `json:"quantity"`
	PaymentMethod      *string `json:"payment_method"`
	PaymentStatus      *int    `json:"payment_status"`
	ConfirmationStatus *int    `json:"confirmation_status"`
}

func (a *API) BuyEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var data buyEditBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	buy, err := service.EditBuy(a.DB, id, &service.EditBuyRequest{
		Quantity:           data.Quantity,
		PaymentMethod:      data.PaymentMethod,
		PaymentStatus:      data.PaymentStatus,
		ConfirmationStatus: data.ConfirmationStatus,
	})
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrQuantityTooSmall),
			errors.Is(err, validators.ErrPaymentMethodEmpty),
			errors.Is(err, validators.ErrPaymentStatusInvalid),
			errors.Is(err, validators.ErrConfirmationStatusInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrBuyNotFound),
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

			zap.L().Error("Failed to edit buy", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"buy": buy,
	})
}
