package api

import (
	"arkan22/cloth-api/model"
	"arkan22/cloth-api/security"
	"arkan22/cloth-api/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserVerify consumes the signed link from the verification mail and marks
// the account as verified.
func (a *API) UserVerify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	userID := c.Query("user_id")
	tokenStr := c.Query("token")

	if userID == "" || tokenStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Missing user_id or token",
			"requestID": requestID,
		})
		return
	}

	var token model.VerificationToken
	err := a.DB.
		Where("user_id = ? AND token = ? AND purpose = ?", userID, tokenStr, model.TokenPurposeEmailVerify).
		First(&token).
		Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Invalid verification link",
			"requestID": requestID,
		})
		return
	}

	if token.Used || time.Now().After(token.ExpiresAt) {
		c.JSON(http.StatusGone, gin.H{
			"error":     "Verification link expired. Please request a new one",
			"requestID": requestID,
		})
		return
	}

	var user model.User
	if err := a.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The account was removed between registration and verification.
			// Logged so operators can spot cleanup jobs racing users.
			zap.L().Error("User missing during verification", zap.String("user_id", userID), zap.String("requestID", requestID))

			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	now := time.Now()

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("verified_at", &now).Error; err != nil {
			return err
		}

		return tx.Model(&token).Updates(map[string]any{
			"used":    true,
			"used_at": &now,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to mark user verified", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified. You can now log in",
	})
}

type resendBody struct {
	Email string `json:"email"`
}

// UserResendVerification issues a fresh verification link for an account
// that hasn't verified yet.
func (a *API) UserResendVerification(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data resendBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email field can't be empty",
			"requestID": requestID,
		})
		return
	}

	var user model.User
	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		// Always answer 200 so the endpoint can't confirm which emails exist
		c.JSON(http.StatusOK, gin.H{
			"message": "If the account exists a new mail has been sent",
		})
		return
	}

	if user.VerifiedAt != nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "If the account exists a new mail has been sent",
		})
		return
	}

	verifToken, err := security.MakeVerificationToken(&security.VerificationTokenOpts{
		UserID:    user.ID,
		Purpose:   model.TokenPurposeEmailVerify,
		ExpiresAt: time.Now().Add(security.TokenTTL),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.DB.Create(verifToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := service.SendVerificationMail(verifToken, user.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send verification email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If the account exists a new mail has been sent",
	})
}
