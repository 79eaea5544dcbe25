package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái lưu trong document lịch lấy hàng.
const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusReady     = "ready"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
)

// ScheduleState là trạng thái dẫn xuất dùng cho các view phân loại.
// Đây là biến thể duy nhất các view được phép dựa vào; field status
// và các cờ xác nhận bên dưới chỉ được thay đổi qua các thao tác
// chuyển trạng thái của ScheduleService.
type ScheduleState string

const (
	ScheduleStatePending   ScheduleState = "pending"
	ScheduleStateCompleted ScheduleState = "completed"
	ScheduleStateCancelled ScheduleState = "cancelled"
)

// Schedule là lịch lấy hàng: gắn một cửa hàng, một tình nguyện viên
// (có thể chưa gán) và một ngày lấy hàng, kèm vòng đời xác nhận.
// StoreName/VolunteerName là bản sao denormalize tại thời điểm ghi,
// không được đồng bộ lại khi hồ sơ gốc đổi tên.
// Collection: schedules
type Schedule struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	StoreID       primitive.ObjectID  `json:"storeId" bson:"storeId" index:"single:1,compound:store_pickup_idx"`
	StoreName     string              `json:"storeName,omitempty" bson:"storeName,omitempty"`
	VolunteerID   *primitive.ObjectID `json:"volunteerId,omitempty" bson:"volunteerId,omitempty" index:"single:1,compound:volunteer_pickup_idx"`
	VolunteerName string              `json:"volunteerName,omitempty" bson:"volunteerName,omitempty"`

	// Ngày lấy hàng tính bằng Unix ms, 0 = chưa có ngày.
	// So sánh "hôm nay trở đi" của feed chỉ xét phần ngày.
	PickupDate int64  `json:"pickupDate" bson:"pickupDate" index:"single:1,compound:store_pickup_idx;compound:volunteer_pickup_idx"`
	StartTime  string `json:"startTime,omitempty" bson:"startTime,omitempty"`   // "HH:mm"
	EndTime    string `json:"endTime,omitempty" bson:"endTime,omitempty"`       // "HH:mm"
	TimeWindow string `json:"timeWindow,omitempty" bson:"timeWindow,omitempty"` // Khung giờ dạng text tự do

	Status string `json:"status" bson:"status" index:"single:1" default:"scheduled"` // scheduled | ready | completed | cancelled

	// Các cờ xác nhận của vòng đời. deliveryConfirmed chỉ đạt được
	// sau pickupConfirmed, ràng buộc bởi logic chuyển trạng thái
	// chứ không phải bởi storage.
	PickupConfirmed     bool  `json:"pickupConfirmed" bson:"pickupConfirmed"`
	PickupConfirmedAt   int64 `json:"pickupConfirmedAt,omitempty" bson:"pickupConfirmedAt,omitempty"`
	DeliveryConfirmed   bool  `json:"deliveryConfirmed" bson:"deliveryConfirmed"`
	DeliveryConfirmedAt int64 `json:"deliveryConfirmedAt,omitempty" bson:"deliveryConfirmedAt,omitempty"`
	ReadyConfirmedAt    int64 `json:"readyConfirmedAt,omitempty" bson:"readyConfirmedAt,omitempty"`

	Notes     string              `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedBy *primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"` // Tài khoản staff đã tạo

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// DerivedState phân loại lịch cho các view:
// completed khi đã xác nhận giao hàng hoặc status completed,
// cancelled khi status cancelled, còn lại là pending.
func (s *Schedule) DerivedState() ScheduleState {
	if s.DeliveryConfirmed || s.Status == ScheduleStatusCompleted {
		return ScheduleStateCompleted
	}
	if s.Status == ScheduleStatusCancelled {
		return ScheduleStateCancelled
	}
	return ScheduleStatePending
}

// HasVolunteer cho biết lịch đã được gán tình nguyện viên chưa.
func (s *Schedule) HasVolunteer() bool {
	return s.VolunteerID != nil && !s.VolunteerID.IsZero()
}
