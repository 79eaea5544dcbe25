package dto

// ScheduleCreateInput dữ liệu đầu vào khi staff tạo lịch lấy hàng (tầng transport)
// Backend tự set status="scheduled" và denormalize storeName/volunteerName từ hồ sơ,
// client không gửi các field đó.
type ScheduleCreateInput struct {
	StoreID     string `json:"storeId" validate:"required,exists=stores" transform:"str_objectid"`                                 // ID cửa hàng (bắt buộc, dạng string ObjectID)
	VolunteerID string `json:"volunteerId,omitempty" validate:"omitempty,exists=volunteers" transform:"str_objectid_ptr,optional"` // ID tình nguyện viên được phân công (tùy chọn, có thể phân công sau)
	PickupDate  int64  `json:"pickupDate" validate:"required,gt=0"`                                                                // Ngày lấy hàng, timestamp milliseconds (bắt buộc)
	StartTime   string `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`                                            // Giờ bắt đầu khung lấy hàng, dạng HH:mm (tùy chọn)
	EndTime     string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`                                              // Giờ kết thúc khung lấy hàng, dạng HH:mm (tùy chọn)
	TimeWindow  string `json:"timeWindow,omitempty" validate:"omitempty,no_xss"`                                                   // Mô tả khung giờ tự do, ví dụ "Sáng 8h-10h" (tùy chọn)
	Notes       string `json:"notes,omitempty" validate:"omitempty,no_xss"`                                                        // Ghi chú cho tình nguyện viên (tùy chọn)
}

// ScheduleUpdateInput dữ liệu đầu vào khi staff sửa lịch lấy hàng (tầng transport)
// Lưu ý: edit KHÔNG reset các cờ xác nhận (pickupConfirmed, deliveryConfirmed, readyConfirmedAt)
// - đổi ngày/đổi người không xóa lịch sử xác nhận đã có.
type ScheduleUpdateInput struct {
	StoreID     string  `json:"storeId,omitempty" validate:"omitempty,exists=stores" transform:"str_objectid,optional"`             // Đổi cửa hàng
	VolunteerID string  `json:"volunteerId,omitempty" validate:"omitempty,exists=volunteers" transform:"str_objectid_ptr,optional"` // Đổi/phân công tình nguyện viên
	PickupDate  *int64  `json:"pickupDate,omitempty" validate:"omitempty,gt=0"`                                                     // Đổi ngày lấy hàng (timestamp milliseconds)
	StartTime   *string `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`                                            // Đổi giờ bắt đầu
	EndTime     *string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`                                              // Đổi giờ kết thúc
	TimeWindow  *string `json:"timeWindow,omitempty" validate:"omitempty,no_xss"`                                                   // Đổi mô tả khung giờ
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=scheduled ready completed cancelled"`                    // Đổi trạng thái trực tiếp (cancelled nhận từ mọi trạng thái)
	Notes       *string `json:"notes,omitempty" validate:"omitempty,no_xss"`                                                        // Đổi ghi chú
}
