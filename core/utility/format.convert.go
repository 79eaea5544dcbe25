package utility

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển chuỗi hex thành ObjectID, trả về NilObjectID nếu chuỗi không hợp lệ.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String chuyển ObjectID thành chuỗi hex.
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// P2Int64 đọc int64 từ giá trị json.Number (body đã decode với UseNumber).
// Trả về 0 nếu giá trị không phải số nguyên.
func P2Int64(input interface{}) int64 {
	jsonNumber, ok := input.(json.Number)
	if !ok {
		return 0
	}
	result, err := jsonNumber.Int64()
	if err != nil {
		return 0
	}
	return result
}

// P2Float64 đọc float64 từ giá trị json.Number.
func P2Float64(input interface{}) float64 {
	jsonNumber, ok := input.(json.Number)
	if !ok {
		return 0
	}
	number, err := jsonNumber.Float64()
	if err != nil {
		return 0
	}
	return number
}

// CurrentTimeInMilli trả về timestamp hiện tại tính bằng mili giây.
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}
