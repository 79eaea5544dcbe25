package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store là cửa hàng quyên góp thực phẩm, nơi nhận các lịch lấy hàng.
// Hồ sơ do chính cửa hàng chỉnh sửa; cờ duyệt do staff bật.
// Collection: stores
type Store struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name" index:"single:1"`             // Tên cửa hàng
	IsApproved bool               `json:"isApproved" bson:"isApproved" index:"single:1"` // Đã được staff duyệt tham gia hay chưa
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`        // Email liên hệ
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`        // Số điện thoại liên hệ
	Address    string             `json:"address,omitempty" bson:"address,omitempty"`    // Địa chỉ lấy hàng

	// Các ngày cửa hàng không nhận lịch, dạng date-only "YYYY-MM-DD"
	UnavailableDates []string `json:"unavailableDates,omitempty" bson:"unavailableDates,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	// Chặn xóa cửa hàng khi còn dữ liệu tham chiếu (lịch, quyên góp, tài khoản)
	_Relationships struct{} `relationship:"collection:schedules,field:storeId,message:Không thể xóa cửa hàng vì có %d lịch lấy hàng đang tham chiếu. Vui lòng xóa hoặc chuyển các lịch trước.|collection:donations,field:storeId,message:Không thể xóa cửa hàng vì có %d bản ghi quyên góp đang tham chiếu.|collection:auth_accounts,field:actorId,message:Không thể xóa cửa hàng vì có %d tài khoản đăng nhập đang gắn với cửa hàng này. Vui lòng xóa tài khoản trước."`
}

// IsUnavailableOn kiểm tra cửa hàng có nghỉ vào ngày "YYYY-MM-DD" không.
func (s *Store) IsUnavailableOn(date string) bool {
	for _, d := range s.UnavailableDates {
		if d == date {
			return true
		}
	}
	return false
}
