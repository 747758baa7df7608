package notification

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// NotificationService delivers a message to a user or consultant.
type NotificationService interface {
	Notify(ctx context.Context, recipientID, title, body string, data map[string]string) error
}

// LogNotificationService records notifications in the application log. It is
// the delivery channel until a push provider is wired in.
type LogNotificationService struct {
	logger *zap.Logger
}

func NewLogNotificationService(logger *zap.Logger) *LogNotificationService {
	return &LogNotificationService{logger: logger}
}

func (s *LogNotificationService) Notify(_ context.Context, recipientID, title, body string, data map[string]string) error {
	fields := []zap.Field{
		zap.String("recipient", recipientID),
		zap.String("title", title),
		zap.String("body", body),
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.String("data."+k, data[k]))
	}
	s.logger.Info("Notification sent", fields...)
	return nil
}
