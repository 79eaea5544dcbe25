package dto

// StoreCreateInput dữ liệu đầu vào khi đăng ký cửa hàng quyên góp (tầng transport)
type StoreCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss"`               // Tên cửa hàng (bắt buộc)
	Email   string `json:"email,omitempty" validate:"omitempty,email"`    // Email liên hệ (tùy chọn)
	Phone   string `json:"phone,omitempty"`                               // Số điện thoại liên hệ (tùy chọn)
	Address string `json:"address,omitempty" validate:"omitempty,no_xss"` // Địa chỉ lấy hàng (tùy chọn)
}

// StoreUpdateInput dữ liệu đầu vào khi cập nhật hồ sơ cửa hàng (tầng transport)
// Lưu ý: KHÔNG thể update isApproved qua endpoint này - duyệt cửa hàng đi qua /approve (chỉ staff)
type StoreUpdateInput struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,no_xss"`                               // Tên cửa hàng
	Email            *string  `json:"email,omitempty" validate:"omitempty,email"`                               // Email liên hệ
	Phone            *string  `json:"phone,omitempty"`                                                          // Số điện thoại liên hệ
	Address          *string  `json:"address,omitempty" validate:"omitempty,no_xss"`                            // Địa chỉ lấy hàng
	UnavailableDates []string `json:"unavailableDates,omitempty" validate:"omitempty,dive,datetime=2006-01-02"` // Các ngày cửa hàng không nhận lịch, dạng YYYY-MM-DD
}

// StoreUnavailableDatesInput dữ liệu đầu vào khi cửa hàng đánh dấu/bỏ đánh dấu
// ngày nghỉ trên lịch của mình (tầng transport). Add và Remove xử lý trong cùng
// một request; ngày trùng trong Add không tạo phần tử lặp ($addToSet).
type StoreUnavailableDatesInput struct {
	Add    []string `json:"add,omitempty" validate:"omitempty,dive,datetime=2006-01-02"`    // Các ngày nghỉ cần thêm, dạng YYYY-MM-DD
	Remove []string `json:"remove,omitempty" validate:"omitempty,dive,datetime=2006-01-02"` // Các ngày nghỉ cần gỡ, dạng YYYY-MM-DD
}
