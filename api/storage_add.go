package api

import (
	"arkan22/cloth-api/model"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type storageAddBody struct {
	ClothID       uint   `json:"cloth_id"`
	Location      string `json:"location"`
	QuantityLimit int    `json:"quantity_limit"`
}

func (a *API) StorageAdd(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data storageAddBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.QuantityLimit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Quantity limit can't be negative",
			"requestID": requestID,
		})
		return
	}

	var cloth model.Cloth
	if err := a.DB.First(&cloth, data.ClothID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Cloth not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch cloth", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	storage := model.Storage{
		ClothID:       cloth.ID,
		Location:      data.Location,
		QuantityLimit: data.QuantityLimit,
	}

	if err := a.DB.Create(&storage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create storage", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"storage": storage,
	})
}
