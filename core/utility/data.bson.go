package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomBson dùng để tạo các update document bson tùy chỉnh
// như $set, $push, $unset từ struct thay vì viết bson.M thủ công.
type CustomBson struct{}

// BsonWrapper chứa các toán tử update cơ bản của MongoDB.
// Gán struct/map vào field tương ứng rồi ToMap để ra update document.
type BsonWrapper struct {

	// Set thay giá trị của các trường bằng giá trị cụ thể.
	// Ví dụ gán struct {Name: "A"} vào Set, sau khi mã hóa sẽ thành { $set: { name: "A" } }
	Set interface{} `json:"$set,omitempty" bson:"$set,omitempty"`

	// Unset xóa một trường cụ thể khỏi document.
	// Nếu trường không tồn tại thì Unset không làm gì cả.
	Unset interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`

	// Push thêm một giá trị vào trường mảng.
	// Nếu trường chưa tồn tại, Push tạo mảng mới với giá trị đó làm phần tử.
	Push interface{} `json:"$push,omitempty" bson:"$push,omitempty"`

	// AddToSet thêm một giá trị vào mảng trừ khi giá trị đã có trong mảng.
	AddToSet interface{} `json:"$addToSet,omitempty" bson:"$addToSet,omitempty"`

	// Pull gỡ mọi phần tử khớp điều kiện khỏi trường mảng.
	Pull interface{} `json:"$pull,omitempty" bson:"$pull,omitempty"`
}

// ToMap chuyển đổi struct/interface thành map[string]interface{} qua BSON marshal.
// Dùng ở tầng service để biến model thành document trước khi thêm timestamps.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(raw, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// Set tạo update document thay giá trị của trường bằng giá trị cụ thể
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Set: data}
	return ToMap(s)
}

// Push tạo update document thêm một giá trị vào trường mảng
func (customBson *CustomBson) Push(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Push: data}
	return ToMap(s)
}

// Unset tạo update document xóa một trường cụ thể
func (customBson *CustomBson) Unset(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Unset: data}
	return ToMap(s)
}

// AddToSet tạo update document thêm giá trị vào mảng nếu giá trị chưa có
func (customBson *CustomBson) AddToSet(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{AddToSet: data}
	return ToMap(s)
}

// Pull tạo update document gỡ các phần tử khớp khỏi trường mảng
func (customBson *CustomBson) Pull(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Pull: data}
	return ToMap(s)
}
