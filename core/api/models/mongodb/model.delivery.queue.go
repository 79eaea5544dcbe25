package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của item trong hàng đợi gửi thông báo.
const (
	DeliveryStatusPending    = "pending"
	DeliveryStatusProcessing = "processing"
	DeliveryStatusSent       = "sent"
	DeliveryStatusFailed     = "failed"
)

// Kênh gửi thông báo.
const (
	DeliveryChannelEmail   = "email"
	DeliveryChannelWebhook = "webhook"
)

// DeliveryQueueItem là một lần gửi thông báo đang chờ xử lý.
// Việc gửi là best-effort: item lỗi được retry với backoff lũy thừa
// cho tới MaxRetries rồi đánh dấu failed, không chặn nghiệp vụ nào.
// Collection: delivery_queue
type DeliveryQueueItem struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NotificationID primitive.ObjectID `json:"notificationId" bson:"notificationId" index:"single:1"`
	Channel        string             `json:"channel" bson:"channel"` // email | webhook
	Recipient      string             `json:"recipient" bson:"recipient"`
	Subject        string             `json:"subject,omitempty" bson:"subject,omitempty"`
	Content        string             `json:"content" bson:"content"`

	Status      string `json:"status" bson:"status" index:"single:1" default:"pending"` // pending | processing | sent | failed
	RetryCount  int    `json:"retryCount" bson:"retryCount"`
	MaxRetries  int    `json:"maxRetries" bson:"maxRetries" default:"3"`
	NextRetryAt *int64 `json:"nextRetryAt,omitempty" bson:"nextRetryAt,omitempty" index:"single:1"`

	TraceID   string `json:"traceId" bson:"traceId"` // UUID xuyên suốt các lần gửi
	LastError string `json:"lastError,omitempty" bson:"lastError,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
