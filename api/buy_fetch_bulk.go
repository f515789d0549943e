package api

import (
	"arkan22/cloth-api/service"
	"arkan22/cloth-api/validators"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// parseBuyFilter reads the shared listing query params. On bad input it
// writes the 400 response itself and returns false.
func parseBuyFilter(c *gin.Context) (*service.BuyFilter, bool) {
	requestID := c.MustGet("requestID").(string)

	f := &service.BuyFilter{}

	pageStr := c.DefaultQuery("buys_page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "buys_page must be a positive integer",
			"requestID": requestID,
		})
		return nil, false
	}
	f.Page = page

	if v, ok := c.GetQuery("payment_method"); ok {
		f.PaymentMethod = &v
	}

	if v, ok := c.GetQuery("payment_status"); ok {
		s, err := strconv.Atoi(v)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "payment_status is not a valid integer",
				"requestID": requestID,
			})
			return nil, false
		}
		f.PaymentStatus = &s
	}

	if v, ok := c.GetQuery("confirmation_status"); ok {
		s, err := strconv.Atoi(v)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "confirmation_status is not a valid integer",
				"requestID": requestID,
			})
			return nil, false
		}
		f.ConfirmationStatus = &s
	}

	return f, true
}

// BuyFetchBulk is the admin listing. It accepts the shared filters plus an
// optional user_id scope and returns one fixed-size page.
func (a *API) BuyFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	f, ok := parseBuyFilter(c)
	if !ok {
		return
	}

	f.UserID = c.Query("user_id")

	page, err := service.ListBuys(a.DB, f)
	if err != nil {
		if errors.Is(err, validators.ErrPaymentStatusInvalid) ||
			errors.Is(err, validators.ErrConfirmationStatusInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list buys", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"buys": page,
	})
}

// BuyFetchSelf is the customer view of the same listing, locked to the
// authenticated user.
func (a *API) BuyFetchSelf(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	f, ok := parseBuyFilter(c)
	if !ok {
		return
	}

	f.UserID = userID

	page, err := service.ListBuys(a.DB, f)
	if err != nil {
		if errors.Is(err, validators.ErrPaymentStatusInvalid) ||
			errors.Is(err, validators.ErrConfirmationStatusInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list buys", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"buys": page,
	})
}
