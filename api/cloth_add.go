package api

import (
	"arkan22/cloth-api/model"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type clothAddBody struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price int64  `json:"price"`
}

func (a *API) ClothAdd(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data clothAddBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if strings.TrimSpace(data.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Name field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Price can't be negative",
			"requestID": requestID,
		})
		return
	}

	cloth := model.Cloth{
		Name:  data.Name,
		Type:  data.Type,
		Price: data.Price,
	}

	if err := a.DB.Create(&cloth).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create cloth", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cloth": cloth,
	})
}
