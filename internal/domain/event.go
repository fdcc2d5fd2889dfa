package domain

import "time"

// 上线状态变更事件的类型
const (
	FeatureEventActivated  = "activated"
	FeatureEventCleared    = "cleared"
	FeatureEventNoCoverage = "no_coverage"
)

// FeatureEvent 由 API 在上线状态变更后发布到消息队列，
// 供通知 worker 和站点缓存等下游消费。EventID 用于消费端去重。
type FeatureEvent struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	SlotID     int64     `json:"slotId,omitempty"`
	SlotName   string    `json:"slotName,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
