package api

import (
	"arkan22/cloth-api/model"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type storageEditBody struct {
	Location      *string `json:"location"`
	QuantityLimit *int    `json:"quantity_limit"`
}

func (a *API) StorageEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var data storageEditBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var storage model.Storage
	if err := a.DB.First(&storage, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Storage not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch storage", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}

	if data.Location != nil {
		updates["location"] = *data.Location
	}

	if data.QuantityLimit != nil {
		if *data.QuantityLimit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Quantity limit can't be negative",
				"requestID": requestID,
			})
			return
		}
		updates["quantity_limit"] = *data.QuantityLimit
	}

	if len(updates) > 0 {
		if err := a.DB.Model(&storage).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update storage", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"storage": storage,
	})
}
