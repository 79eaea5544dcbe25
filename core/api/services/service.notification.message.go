package services

import (
	"context"
	"fmt"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationService là service cho collection thông báo.
// Thông báo là write-once: emitter ghi, API chỉ đọc, không có update/delete.
type NotificationService struct {
	*BaseServiceMongoImpl[models.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	return &NotificationService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Notification](collection),
	}, nil
}

// FindMine trả về thông báo của tác nhân trong context, mới nhất trước:
// cửa hàng thấy thông báo có storeId của mình, tình nguyện viên thấy
// thông báo có volunteerId của mình, staff thấy toàn bộ.
func (s *NotificationService) FindMine(ctx context.Context, limit int64) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	role, _ := GetRoleFromContext(ctx)

	var filter interface{}
	switch role {
	case models.RoleStaff:
		filter = bson.D{}
	case models.RoleStore:
		actorID, ok := GetActorIDFromContext(ctx)
		if !ok {
			return nil, common.ErrAccountNotFound
		}
		filter = bson.M{"storeId": actorID}
	case models.RoleVolunteer:
		actorID, ok := GetActorIDFromContext(ctx)
		if !ok {
			return nil, common.ErrAccountNotFound
		}
		filter = bson.M{"volunteerId": actorID}
	default:
		return nil, common.ErrRoleNotAllowed
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	return s.Find(ctx, filter, opts)
}
