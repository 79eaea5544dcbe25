package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vai trò của tài khoản. Mỗi tài khoản gắn với đúng một vai trò;
// store và volunteer trỏ tới document hồ sơ tương ứng qua ActorID.
const (
	RoleStaff     = "staff"
	RoleStore     = "store"
	RoleVolunteer = "volunteer"
)

// Account là tài khoản truy cập API, được staff cấp phát.
// Việc xác minh danh tính nằm ở phía đối tác; hệ thống chỉ tin
// bearer token đã cấp và tra ngược tài khoản theo token đó.
// Collection: auth_accounts
type Account struct {
	ID      primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Email   string              `json:"email" bson:"email" index:"unique"`                           // Email liên hệ, duy nhất
	Name    string              `json:"name,omitempty" bson:"name,omitempty"`                        // Tên hiển thị của tài khoản
	Role    string              `json:"role" bson:"role" index:"single:1"`                           // staff | store | volunteer
	ActorID *primitive.ObjectID `json:"actorId,omitempty" bson:"actorId,omitempty" index:"single:1"` // ID hồ sơ store/volunteer (staff không có)

	Token   string `json:"-" bson:"token,omitempty" index:"unique,sparse"` // Bearer token đang hiệu lực
	IsBlock bool   `json:"isBlock" bson:"isBlock"`                         // Tài khoản bị khóa thì mọi request bị từ chối

	// IsSystem đánh dấu tài khoản do hệ thống seed lúc khởi động (tài khoản staff đầu tiên).
	// Tài khoản system không xóa được để luôn còn ít nhất một đường vào quản trị.
	IsSystem bool `json:"isSystem,omitempty" bson:"isSystem,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
