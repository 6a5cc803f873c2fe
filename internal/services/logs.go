package services

import (
	"context"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
)

type LogService struct {
	client *apiclient.Client
}

func NewLogService(client *apiclient.Client) *LogService {
	return &LogService{client: client}
}

// List returns the activity log, newest first. The log is read-only from the
// client's side.
func (s *LogService) List(ctx context.Context) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	if err := s.client.Get(ctx, "/api/logs", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
