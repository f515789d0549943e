package api

import (
	"arkan22/cloth-api/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) BuyDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := service.DeleteBuy(a.DB, id); err != nil {
		if errors.Is(err, service.ErrBuyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message":   "Buy not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete buy", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully Deleted",
	})
}
