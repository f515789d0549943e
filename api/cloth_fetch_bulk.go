package api

import (
	"arkan22/cloth-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ClothFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var clothes []model.Cloth
	err := a.DB.
		Preload("Storages").
		Order("id asc").
		Find(&clothes).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list clothes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clothes": clothes,
	})
}
