package api

import (
	"arkan22/cloth-api/model"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type clothEditBody struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Price *int64  `json:"price"`
}

func (a *API) ClothEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var data clothEditBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
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

	updates := map[string]any{}

	if data.Name != nil {
		if strings.TrimSpace(*data.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Name field can't be empty",
				"requestID": requestID,
			})
			return
		}
		updates["name"] = *data.Name
	}

	if data.Type != nil {
		updates["type"] = *data.Type
	}

	if data.Price != nil {
		if *data.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Price can't be negative",
				"requestID": requestID,
			})
			return
		}
		updates["price"] = *data.Price
	}

	if len(updates) > 0 {
		if err := a.DB.Model(&cloth).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update cloth", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"cloth": cloth,
	})
}
