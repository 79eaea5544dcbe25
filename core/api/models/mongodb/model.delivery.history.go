package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryHistory ghi lại từng lần thử gửi thông báo (thành công lẫn thất bại)
// để đối soát. Bản ghi cũ do cleanup worker xóa định kỳ.
// Collection: delivery_history
type DeliveryHistory struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	QueueItemID    primitive.ObjectID `json:"queueItemId" bson:"queueItemId" index:"single:1"`
	NotificationID primitive.ObjectID `json:"notificationId" bson:"notificationId" index:"single:1"`
	Channel        string             `json:"channel" bson:"channel"`
	Recipient      string             `json:"recipient" bson:"recipient"`
	Status         string             `json:"status" bson:"status"` // sent | failed
	Error          string             `json:"error,omitempty" bson:"error,omitempty"`
	DurationMs     int64              `json:"durationMs" bson:"durationMs"`
	AttemptedAt    int64              `json:"attemptedAt" bson:"attemptedAt" index:"single:1"` // Unix ms
}
