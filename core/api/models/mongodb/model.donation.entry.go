package models

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của bản ghi quyên góp.
const (
	DonationStatusPending   = "pending"
	DonationStatusApproved  = "approved"
	DonationStatusRejected  = "rejected"
	DonationStatusCompleted = "completed"
)

// DonationItem là một dòng hàng quyên góp.
// Kg giữ kiểu interface{} vì dữ liệu cũ lưu lẫn số và chuỗi số;
// đọc giá trị qua KgValue để được float64 thống nhất.
type DonationItem struct {
	FoodType string      `json:"foodType" bson:"foodType"` // Loại thực phẩm
	Boxes    int         `json:"boxes" bson:"boxes"`       // Số thùng, >= 0
	Kg       interface{} `json:"kg" bson:"kg"`             // Khối lượng kg, >= 0
}

// KgValue đọc khối lượng của dòng hàng, chấp nhận mọi kiểu số
// và chuỗi số; giá trị không đọc được tính là 0.
func (i DonationItem) KgValue() float64 {
	switch v := i.Kg.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Donation là bản ghi quyên góp đã thu: danh sách dòng hàng cùng
// tổng số thùng / tổng kg tính lại từ items mỗi lần lưu.
// VolunteerName/StoreName denormalize; các field *Legacy giữ các
// cách đặt tên cũ còn tồn tại trong dữ liệu, dùng khi resolve tên.
// Collection: donations
type Donation struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	VolunteerID *primitive.ObjectID `json:"volunteerId,omitempty" bson:"volunteerId,omitempty" index:"single:1"`
	StoreID     *primitive.ObjectID `json:"storeId,omitempty" bson:"storeId,omitempty" index:"single:1"`

	VolunteerName       string `json:"volunteerName,omitempty" bson:"volunteerName,omitempty"`
	VolunteerNameLegacy string `json:"collectorName,omitempty" bson:"collectorName,omitempty"` // Cách ghi cũ
	StoreName           string `json:"storeName,omitempty" bson:"storeName,omitempty"`
	StoreNameLegacy     string `json:"shopName,omitempty" bson:"shopName,omitempty"` // Cách ghi cũ

	Items      []DonationItem `json:"items" bson:"items"`
	TotalBoxes int            `json:"totalBoxes" bson:"totalBoxes"` // = Σ items.boxes, tính lại mỗi lần lưu
	TotalKg    float64        `json:"totalKg" bson:"totalKg"`       // = Σ items.kg, tính lại mỗi lần lưu

	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`
	Date  int64  `json:"date" bson:"date" index:"single:1"` // Ngày quyên góp, Unix ms

	Status          string `json:"status" bson:"status" index:"single:1" default:"pending"` // pending | approved | rejected | completed
	CreatedManually bool   `json:"createdManually" bson:"createdManually"`                  // Staff nhập tay (status completed ngay)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
