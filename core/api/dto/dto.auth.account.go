package dto

// AccountCreateInput dữ liệu đầu vào khi staff tạo tài khoản đăng nhập (tầng transport)
// Mỗi tài khoản gắn với một vai trò: staff, store hoặc volunteer.
// Với role store/volunteer thì ActorID trỏ tới hồ sơ tương ứng trong collection stores/volunteers.
type AccountCreateInput struct {
	Email   string `json:"email" validate:"required,email"`                         // Email đăng nhập (bắt buộc, unique)
	Name    string `json:"name" validate:"required,no_xss"`                         // Tên hiển thị (bắt buộc)
	Role    string `json:"role" validate:"required,oneof=staff store volunteer"`    // Vai trò: staff, store, volunteer (bắt buộc)
	ActorID string `json:"actorId,omitempty" transform:"str_objectid_ptr,optional"` // ID hồ sơ store/volunteer gắn với tài khoản (tùy chọn với staff, dạng string ObjectID)
}

// AccountUpdateInput dữ liệu đầu vào khi cập nhật tài khoản (tầng transport)
// Lưu ý: KHÔNG thể update token qua endpoint này - token chỉ đổi qua rotate-token (bảo mật)
type AccountUpdateInput struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,no_xss"` // Tên hiển thị
	IsBlock *bool   `json:"isBlock,omitempty"`                          // Khóa/mở khóa tài khoản (dùng pointer để phân biệt false và không cập nhật)
}
