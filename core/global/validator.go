package global

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo validator dùng chung và đăng ký các custom validator.
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("no_sql_injection", validateNoSQLInjection)
	_ = Validate.RegisterValidation("exists", validateExists)
}

// validateNoXSS chặn các payload script phổ biến trong text nhập tự do
// (ghi chú, tên hiển thị, địa chỉ).
func validateNoXSS(fl validator.FieldLevel) bool {
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value := strings.ToLower(fl.Field().String())
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateNoSQLInjection chặn các pattern injection trong text nhập tự do.
func validateNoSQLInjection(fl validator.FieldLevel) bool {
	sqlPatterns := []string{
		"'",
		";",
		"--",
		"/*",
		"*/",
		"xp_",
		"SELECT",
		"DROP",
		"DELETE",
		"UPDATE",
		"INSERT",
		"UNION",
		"OR 1=1",
		"OR '1'='1",
		"WAITFOR",
		"BENCHMARK",
	}

	value := strings.ToUpper(fl.Field().String())
	for _, pattern := range sqlPatterns {
		if strings.Contains(value, strings.ToUpper(pattern)) {
			return false
		}
	}
	return true
}

// validateExists kiểm tra ObjectID tham chiếu có tồn tại trong collection.
// Format: validate:"exists=<collection_name>", ví dụ: validate:"exists=stores".
// Giá trị rỗng/nil được coi là optional và bỏ qua (kết hợp với omitempty).
func validateExists(fl validator.FieldLevel) bool {
	collectionName := fl.Param()
	if collectionName == "" {
		return false
	}

	var objID primitive.ObjectID
	switch v := fl.Field().Interface().(type) {
	case string:
		if v == "" {
			return true
		}
		var err error
		objID, err = primitive.ObjectIDFromHex(v)
		if err != nil {
			return false
		}
	case primitive.ObjectID:
		if v == primitive.NilObjectID {
			return true
		}
		objID = v
	case *primitive.ObjectID:
		if v == nil {
			return true
		}
		objID = *v
	default:
		return false
	}

	collection, exist := RegistryCollections.Get(collectionName)
	if !exist {
		return false
	}

	count, err := collection.CountDocuments(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return false
	}

	return count > 0
}
