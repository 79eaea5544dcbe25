package dto

// DonationItemInput một dòng hàng trong bản ghi quyên góp (tầng transport)
// Kg nhận từ API luôn là số; dữ liệu cũ trong DB có thể chứa chuỗi số, model tự xử lý khi đọc.
type DonationItemInput struct {
	FoodType string  `json:"foodType" validate:"required,no_xss"` // Loại thực phẩm, ví dụ "Bánh mì", "Rau củ" (bắt buộc)
	Boxes    int     `json:"boxes" validate:"gte=0"`              // Số thùng/hộp (>= 0)
	Kg       float64 `json:"kg" validate:"gte=0"`                 // Khối lượng kg (>= 0)
}

// DonationCreateInput dữ liệu đầu vào khi ghi nhận quyên góp (tầng transport)
// Volunteer tự ghi sau khi giao hàng, hoặc staff nhập tay (backend set createdManually=true
// và status=completed cho bản ghi nhập tay). TotalBoxes/TotalKg backend tự tính từ items.
type DonationCreateInput struct {
	VolunteerID string              `json:"volunteerId,omitempty" validate:"omitempty,exists=volunteers" transform:"str_objectid_ptr,optional"` // ID tình nguyện viên (staff nhập tay có thể bỏ trống)
	StoreID     string              `json:"storeId,omitempty" validate:"omitempty,exists=stores" transform:"str_objectid_ptr,optional"`         // ID cửa hàng (tùy chọn với bản ghi cũ/nhập tay)
	StoreName   string              `json:"storeName,omitempty" validate:"omitempty,no_xss"`                                                    // Tên cửa hàng nhập tự do khi không có StoreID
	Items       []DonationItemInput `json:"items" validate:"required,min=1,dive"`                                                               // Danh sách dòng hàng (bắt buộc, ít nhất 1 dòng)
	Date        *int64              `json:"date,omitempty"`                                                                                     // Ngày quyên góp, timestamp milliseconds (mặc định: thời điểm ghi nhận)
	Notes       string              `json:"notes,omitempty" validate:"omitempty,no_xss"`                                                        // Ghi chú (tùy chọn)
}

// DonationUpdateInput dữ liệu đầu vào khi staff sửa bản ghi quyên góp (tầng transport)
// Khi Items thay đổi backend tính lại TotalBoxes/TotalKg, client không gửi totals.
type DonationUpdateInput struct {
	Items     []DonationItemInput `json:"items,omitempty" validate:"omitempty,min=1,dive"`                                 // Danh sách dòng hàng mới (thay toàn bộ)
	StoreName *string             `json:"storeName,omitempty" validate:"omitempty,no_xss"`                                 // Đổi tên cửa hàng nhập tự do
	Date      *int64              `json:"date,omitempty"`                                                                  // Đổi ngày quyên góp
	Status    *string             `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected completed"` // Đổi trạng thái duyệt
	Notes     *string             `json:"notes,omitempty" validate:"omitempty,no_xss"`                                     // Đổi ghi chú
}
