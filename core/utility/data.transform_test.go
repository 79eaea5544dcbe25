// Package utility - Test parse tag transform và chuyển giá trị DTO sang model.
package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag(t *testing.T) {
	config, err := ParseTransformTag("str_objectid")
	assert.NoError(t, err)
	assert.Equal(t, "str_objectid", config.Type)
	assert.False(t, config.Optional)

	config, err = ParseTransformTag("str_objectid_ptr,optional")
	assert.NoError(t, err)
	assert.Equal(t, "str_objectid_ptr", config.Type)
	assert.True(t, config.Optional)

	config, err = ParseTransformTag("str_time,format=2006-01-02,required")
	assert.NoError(t, err)
	assert.Equal(t, "str_time", config.Type)
	assert.Equal(t, "2006-01-02", config.Format)
	assert.True(t, config.Required)

	config, err = ParseTransformTag("string,default=pending")
	assert.NoError(t, err)
	assert.Equal(t, "pending", config.Default)
}

func TestParseTransformTag_TagRong(t *testing.T) {
	config, err := ParseTransformTag("")
	assert.NoError(t, err)
	assert.Equal(t, "", config.Type)
	assert.Equal(t, "2006-01-02T15:04:05", config.Format, "Format mặc định khi tag không ghi")
}

func TestTransformFieldValue_ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	config, _ := ParseTransformTag("str_objectid")

	value, err := TransformFieldValue(id.Hex(), config, nil)
	assert.NoError(t, err)
	assert.Equal(t, id, value)

	_, err = TransformFieldValue("not-a-hex", config, nil)
	assert.Error(t, err, "Hex sai phải trả lỗi")
}

func TestTransformFieldValue_ObjectIDPtr_RongThanhNil(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid_ptr,optional")

	value, err := TransformFieldValue("", config, nil)
	assert.NoError(t, err)
	assert.Nil(t, value, "Field optional rỗng phải thành nil")

	id := primitive.NewObjectID()
	value, err = TransformFieldValue(id.Hex(), config, nil)
	assert.NoError(t, err)
	ptr, ok := value.(*primitive.ObjectID)
	assert.True(t, ok)
	assert.Equal(t, id, *ptr)
}

func TestTransformFieldValue_Required(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid,required")

	_, err := TransformFieldValue("", config, nil)
	assert.Error(t, err, "Field required rỗng phải trả lỗi")

	_, err = TransformFieldValue(nil, config, nil)
	assert.Error(t, err)
}

func TestTransformFieldValue_Default(t *testing.T) {
	config, _ := ParseTransformTag("string,default=pending")

	value, err := TransformFieldValue("", config, nil)
	assert.NoError(t, err)
	assert.Equal(t, "pending", value, "Giá trị rỗng nhận default trước khi xét optional/required")
}

func TestTransformFieldValue_StrTime(t *testing.T) {
	config, _ := ParseTransformTag("str_time,format=2006-01-02")

	value, err := TransformFieldValue("2025-03-15", config, nil)
	assert.NoError(t, err)
	// str_time parse theo UTC (time.Parse không có location)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC).UnixMilli(), value)

	_, err = TransformFieldValue("15/03/2025", config, nil)
	assert.Error(t, err, "Sai format phải trả lỗi")
}

func TestTransformFieldValue_Int64(t *testing.T) {
	config, _ := ParseTransformTag("str_int64")

	value, err := TransformFieldValue("42", config, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), value)

	value, err = TransformFieldValue(float64(7), config, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), value)

	_, err = TransformFieldValue("abc", config, nil)
	assert.Error(t, err)
}

func TestTransformFieldValue_Bool(t *testing.T) {
	config, _ := ParseTransformTag("str_bool")

	value, err := TransformFieldValue("true", config, nil)
	assert.NoError(t, err)
	assert.Equal(t, true, value)

	value, err = TransformFieldValue(0, config, nil)
	assert.NoError(t, err)
	assert.Equal(t, false, value)
}

func TestTransformFieldValue_KhongCoTransformType(t *testing.T) {
	config, _ := ParseTransformTag("")

	value, err := TransformFieldValue("giữ nguyên", config, nil)
	assert.NoError(t, err)
	assert.Equal(t, "giữ nguyên", value, "Không có transform type thì giữ nguyên giá trị gốc")
}
