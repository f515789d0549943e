package api

import (
	"arkan22/cloth-api/model"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ClothDelete removes a cloth together with its storage records.
func (a *API) ClothDelete(c *gin.Context) {
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

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cloth_id = ?", cloth.ID).Delete(model.Storage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&cloth).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete cloth", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully Deleted",
	})
}
