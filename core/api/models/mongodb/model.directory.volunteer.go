package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Volunteer là tình nguyện viên đi lấy và giao hàng quyên góp.
// Tên hiển thị có thể nằm ở một trong vài field tùy nguồn dữ liệu cũ;
// DisplayName gom lại theo thứ tự ưu tiên name → fullName → displayName.
// Collection: volunteers
type Volunteer struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`               // Tên hiển thị (field chuẩn)
	FullName string             `json:"fullName,omitempty" bson:"fullName,omitempty"`       // Tên đầy đủ (dữ liệu cũ)
	Display  string             `json:"displayName,omitempty" bson:"displayName,omitempty"` // Tên hiển thị (dữ liệu cũ)
	Email    string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone    string             `json:"phone,omitempty" bson:"phone,omitempty"`
	PhotoURL string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"` // Ảnh đại diện

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	// Chặn xóa tình nguyện viên khi còn dữ liệu tham chiếu (lịch, quyên góp, tài khoản)
	_Relationships struct{} `relationship:"collection:schedules,field:volunteerId,message:Không thể xóa tình nguyện viên vì có %d lịch lấy hàng đang phân công. Vui lòng đổi người hoặc xóa lịch trước.|collection:donations,field:volunteerId,message:Không thể xóa tình nguyện viên vì có %d bản ghi quyên góp đang tham chiếu.|collection:auth_accounts,field:actorId,message:Không thể xóa tình nguyện viên vì có %d tài khoản đăng nhập đang gắn. Vui lòng xóa tài khoản trước."`
}

// DisplayName trả về tên hiển thị theo thứ tự ưu tiên các field,
// chuỗi rỗng nếu hồ sơ không có tên nào.
func (v *Volunteer) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	if v.FullName != "" {
		return v.FullName
	}
	return v.Display
}
