package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
)

// publishFeatureEvent 把上线状态变更发布到消息队列，供通知 worker 和站点缓存消费。
// 事件只用于通知，发布失败不影响主流程，记录日志即可。
func (h *Handler) publishFeatureEvent(eventType string, slot *domain.FeaturedSlot) {
	event := domain.FeatureEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now(),
	}
	if slot != nil {
		event.SlotID = slot.ID
		event.SlotName = slot.Name
	}

	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("推荐事件序列化失败", "type", eventType, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.eventChannel.PublishWithContext(
		ctx,
		"",
		"feature_events",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("发布推荐事件失败", "type", eventType, "error", err)
	}
}
