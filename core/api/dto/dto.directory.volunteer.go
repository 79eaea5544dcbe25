package dto

// VolunteerCreateInput dữ liệu đầu vào khi tạo hồ sơ tình nguyện viên (tầng transport)
// Hồ sơ có thể mang một hoặc nhiều biến thể tên (name, fullName, displayName) tùy nguồn nhập.
type VolunteerCreateInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,no_xss"`        // Tên ngắn (tùy chọn)
	FullName string `json:"fullName,omitempty" validate:"omitempty,no_xss"`    // Họ tên đầy đủ (tùy chọn)
	Display  string `json:"displayName,omitempty" validate:"omitempty,no_xss"` // Tên hiển thị (tùy chọn)
	Email    string `json:"email,omitempty" validate:"omitempty,email"`        // Email liên hệ (tùy chọn, unique nếu có)
	Phone    string `json:"phone,omitempty"`                                   // Số điện thoại (tùy chọn)
	PhotoURL string `json:"photoUrl,omitempty" validate:"omitempty,url"`       // Ảnh đại diện (tùy chọn)
}

// VolunteerUpdateInput dữ liệu đầu vào khi cập nhật hồ sơ tình nguyện viên (tầng transport)
type VolunteerUpdateInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,no_xss"`        // Tên ngắn
	FullName *string `json:"fullName,omitempty" validate:"omitempty,no_xss"`    // Họ tên đầy đủ
	Display  *string `json:"displayName,omitempty" validate:"omitempty,no_xss"` // Tên hiển thị
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`        // Email liên hệ
	Phone    *string `json:"phone,omitempty"`                                   // Số điện thoại
	PhotoURL *string `json:"photoUrl,omitempty" validate:"omitempty,url"`       // Ảnh đại diện
}
