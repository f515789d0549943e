package service

import (
	"arkan22/cloth-api/model"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenCleanup defines a function used to periodically cleanup old
// verification tokens that aren't needed anymore
func TokenCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			res := db.
				Where("expires_at < ? OR used = ?", time.Now(), true).
				Delete(model.VerificationToken{})
			if res.Error != nil {
				zap.L().Error("Failed to cleanup expired tokens", zap.Error(res.Error))
				continue
			}

			if res.RowsAffected > 0 {
				zap.L().Debug("Cleaned up expired tokens", zap.Int64("count", res.RowsAffected))
			}
		}
	}()
}
