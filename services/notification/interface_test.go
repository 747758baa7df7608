package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotificationService_Notify(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := NewLogNotificationService(zap.New(core))

	err := svc.Notify(context.Background(), "u1", "Session soon", "Starts in 15 minutes",
		map[string]string{"bookingId": "b1", "consultantId": "c1"})

	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Notification sent", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "u1", fields["recipient"])
	assert.Equal(t, "b1", fields["data.bookingId"])
	assert.Equal(t, "c1", fields["data.consultantId"])
}
