package app

import (
	"context"
	"time"

	"github.com/folio-space/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const analyticsRetention = 90 * 24 * time.Hour

// runAnalyticsRetention prunes view records past the retention window once a
// day. The raw rows only feed the aggregate counters, so old ones are noise.
func runAnalyticsRetention(ctx context.Context, db *gorm.DB, logger *zap.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		cutoff := time.Now().Add(-analyticsRetention)
		result := db.Where("timestamp < ?", cutoff).Delete(&models.AnalyzeModel{})
		if result.Error != nil {
			logger.Warn("prune analytics", zap.Error(result.Error))
		} else if result.RowsAffected > 0 {
			logger.Info("pruned analytics rows", zap.Int64("count", result.RowsAffected))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
