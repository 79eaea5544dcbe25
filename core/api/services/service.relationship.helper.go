package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"food_bridge/core/common"
	"food_bridge/core/global"
)

// RelationshipCheck định nghĩa một quan hệ cần kiểm tra trước khi xóa record
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiểm tra có record nào trong collection khác đang trỏ tới record này không
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Không tìm thấy collection '%s' để kiểm tra quan hệ", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Không thể xóa record vì có %d record trong collection '%s' đang tham chiếu tới record này", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount trả về số lượng record đang tham chiếu tới record này
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Không tìm thấy collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteStore kiểm tra các quan hệ của Store trước khi xóa.
// Cửa hàng còn lịch lấy hàng hoặc bản ghi quyên góp tham chiếu thì không xóa được,
// tránh mồ côi dữ liệu lịch sử.
func ValidateBeforeDeleteStore(ctx context.Context, storeID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Schedules, FieldName: "storeId", ErrorMessage: "Không thể xóa cửa hàng vì có %d lịch lấy hàng đang tham chiếu. Vui lòng xóa hoặc chuyển các lịch trước."},
		{CollectionName: global.MongoDB_ColNames.Donations, FieldName: "storeId", ErrorMessage: "Không thể xóa cửa hàng vì có %d bản ghi quyên góp đang tham chiếu."},
		{CollectionName: global.MongoDB_ColNames.AuthAccounts, FieldName: "actorId", ErrorMessage: "Không thể xóa cửa hàng vì có %d tài khoản đăng nhập đang gắn với cửa hàng này. Vui lòng xóa tài khoản trước."},
	}
	return CheckRelationshipExists(ctx, storeID, checks)
}

// ValidateBeforeDeleteVolunteer kiểm tra các quan hệ của Volunteer trước khi xóa.
func ValidateBeforeDeleteVolunteer(ctx context.Context, volunteerID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Schedules, FieldName: "volunteerId", ErrorMessage: "Không thể xóa tình nguyện viên vì có %d lịch lấy hàng đang phân công. Vui lòng đổi người hoặc xóa lịch trước."},
		{CollectionName: global.MongoDB_ColNames.Donations, FieldName: "volunteerId", ErrorMessage: "Không thể xóa tình nguyện viên vì có %d bản ghi quyên góp đang tham chiếu."},
		{CollectionName: global.MongoDB_ColNames.AuthAccounts, FieldName: "actorId", ErrorMessage: "Không thể xóa tình nguyện viên vì có %d tài khoản đăng nhập đang gắn. Vui lòng xóa tài khoản trước."},
	}
	return CheckRelationshipExists(ctx, volunteerID, checks)
}
