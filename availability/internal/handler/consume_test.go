package handler

import (
	"context"
	"testing"

	"github.com/hotelio/hotel-service/availability/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsumer_SetupAcrossSessions(t *testing.T) {
	t.Parallel()
	consumer := NewConsumer(func(context.Context, model.RoomEvent) error { return nil }, zap.NewNop())

	// the consume loop re-enters the group after every rebalance, which
	// starts a fresh session against the same handler
	require.NotPanics(t, func() {
		require.NoError(t, consumer.Setup(nil))
		require.NoError(t, consumer.Cleanup(nil))
		require.NoError(t, consumer.Setup(nil))
	})
}
