package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại thông báo, tương ứng với ba bước xác nhận của vòng đời lịch lấy hàng.
const (
	NotificationTypeReadinessConfirmed = "readiness_confirmed"
	NotificationTypePickupConfirmed    = "pickup_confirmed"
	NotificationTypeDeliveryConfirmed  = "delivery_confirmed"
)

// Notification là bản ghi thông báo phát ra sau mỗi chuyển trạng thái
// thành công. Write-once: không có route update/delete nào cho collection
// này; consumer downstream chỉ đọc.
// Collection: notifications
type Notification struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Type        string              `json:"type" bson:"type" index:"single:1"` // readiness_confirmed | pickup_confirmed | delivery_confirmed
	ScheduleID  primitive.ObjectID  `json:"scheduleId" bson:"scheduleId" index:"single:1"`
	StoreID     primitive.ObjectID  `json:"storeId" bson:"storeId" index:"single:1"`
	VolunteerID *primitive.ObjectID `json:"volunteerId,omitempty" bson:"volunteerId,omitempty" index:"single:1"`
	Message     string              `json:"message" bson:"message"`
	CreatedAt   int64               `json:"createdAt" bson:"createdAt" index:"single:1"`
}
