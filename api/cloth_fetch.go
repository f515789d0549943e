package api

import (
	"arkan22/cloth-api/model"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) ClothFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var cloth model.Cloth
	err := a.DB.
		Preload("Storages").
		First(&cloth, id).
		Error
	if err != nil {
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

	c.JSON(http.StatusOK, gin.H{
		"cloth": cloth,
	})
}

// ClothQuantity returns the total number of sellable units a cloth has
// left across all of its storage records.
func (a *API) ClothQuantity(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var cloth model.Cloth
	if err := a.DB.First(&cloth, id).Error; err != nil {
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

	var total int64
	err := a.DB.
		Model(model.Storage{}).
		Where("cloth_id = ?", cloth.ID).
		Select("COALESCE(SUM(quantity_limit), 0)").
		Scan(&total).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to sum storage quantities", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cloth_id": cloth.ID,
		"quantity": total,
	})
}
