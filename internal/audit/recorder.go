package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/models"
)

// Recorder mirrors every audited action into the activity_logs table (served
// by GET /api/logs) and onto the Kafka topic. Audit failures are logged and
// swallowed: they must never fail the request that triggered them.
type Recorder struct {
	DB       *gorm.DB
	Producer *Producer
	Log      *slog.Logger
}

func (r *Recorder) Record(ctx context.Context, userID uint, action, detail string) {
	entry := models.ActivityLog{
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		r.Log.Error("audit: store activity log", "err", err)
	}

	event := map[string]any{
		"type":    action,
		"user_id": userID,
		"detail":  detail,
		"at":      entry.CreatedAt,
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := r.Producer.Publish(pubCtx, fmt.Sprint(userID), event); err != nil {
		r.Log.Error("audit: publish event", "err", err)
	}
}
