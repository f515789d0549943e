package api

import (
	"arkan22/cloth-api/model"
	"arkan22/cloth-api/security"
	"arkan22/cloth-api/service"
	"arkan22/cloth-api/validators"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type passwordChangeBody struct {
	Password string `json:"password"`
}

// UserPasswordChange rehashes and overwrites the credential of the logged
// in user.
func (a *API) UserPasswordChange(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data passwordChangeBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.
		Model(model.User{}).
		Where("id = ?", userID).
		Update("password_hash", hash).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated",
	})
}

type passwordForgotBody struct {
	Email string `json:"email"`
}

// UserPasswordForgot mails a time-limited reset link. The old behavior of
// generating a password and mailing it in cleartext is gone on purpose.
func (a *API) UserPasswordForgot(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data passwordForgotBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var user model.User
	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		// Don't leak which emails are registered
		c.JSON(http.StatusOK, gin.H{
			"message": "If the account exists a reset mail has been sent",
		})
		return
	}

	resetToken, err := security.MakeVerificationToken(&security.VerificationTokenOpts{
		UserID:    user.ID,
		Purpose:   model.TokenPurposePasswordReset,
		ExpiresAt: time.Now().Add(security.TokenTTL),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.DB.Create(resetToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := service.SendPasswordResetMail(resetToken, user.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send reset email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If the account exists a reset mail has been sent",
	})
}

type passwordResetBody struct {
	UserID   string `json:"user_id"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UserPasswordReset consumes a reset link and overwrites the credential
// with the freshly chosen password.
func (a *API) UserPasswordReset(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data passwordResetBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.UserID == "" || data.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Missing user_id or token",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var token model.VerificationToken
	err := a.DB.
		Where("user_id = ? AND token = ? AND purpose = ?", data.UserID, data.Token, model.TokenPurposePasswordReset).
		First(&token).
		Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Invalid reset link",
			"requestID": requestID,
		})
		return
	}

	if token.Used || time.Now().After(token.ExpiresAt) {
		c.JSON(http.StatusGone, gin.H{
			"error":     "Reset link expired. Please request a new one",
			"requestID": requestID,
		})
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	now := time.Now()

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(model.User{}).
			Where("id = ?", data.UserID).
			Update("password_hash", hash).
			Error
		if err != nil {
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

		zap.L().Error("Failed to reset password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated. You can now log in",
	})
}
