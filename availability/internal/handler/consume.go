package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/hotelio/hotel-service/availability/internal/model"
	"go.uber.org/zap"
)

type applyRoomEvent func(ctx context.Context, ev model.RoomEvent) error

type Consumer struct {
	applyRoomEventHandler applyRoomEvent
	log                   *zap.Logger
}

func NewConsumer(applyRoomEvent applyRoomEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		applyRoomEventHandler: applyRoomEvent,
		log:                   log.Named("consumer"),
	}
}

// Setup runs at the start of every session; the group rejoins after each
// rebalance, so it must stay safe to call repeatedly on one Consumer.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var ev model.RoomEvent
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("unmarshal room event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.applyRoomEventHandler(context.Background(), ev); err != nil {
				consumer.log.Error("consumer.applyRoomEventHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:",
				zap.String("event_id", ev.EventID),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
