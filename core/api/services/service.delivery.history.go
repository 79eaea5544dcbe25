package services

import (
	"context"
	"fmt"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"
	"food_bridge/core/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DeliveryHistoryService là service quản lý lịch sử các lần gửi thông báo
type DeliveryHistoryService struct {
	*BaseServiceMongoImpl[models.DeliveryHistory]
}

// NewDeliveryHistoryService tạo mới DeliveryHistoryService
func NewDeliveryHistoryService() (*DeliveryHistoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DeliveryHistory)
	if !exist {
		return nil, fmt.Errorf("failed to get delivery_history collection: %v", common.ErrNotFound)
	}

	return &DeliveryHistoryService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.DeliveryHistory](collection),
	}, nil
}

// RecordAttempt ghi lại một lần thử gửi (thành công hoặc thất bại) của một queue item
func (s *DeliveryHistoryService) RecordAttempt(ctx context.Context, item *models.DeliveryQueueItem, status string, errMsg string, durationMs int64) error {
	history := models.DeliveryHistory{
		QueueItemID:    item.ID,
		NotificationID: item.NotificationID,
		Channel:        item.Channel,
		Recipient:      item.Recipient,
		Status:         status,
		Error:          errMsg,
		DurationMs:     durationMs,
		AttemptedAt:    utility.CurrentTimeInMilli(),
	}

	_, err := s.InsertOne(ctx, history)
	return err
}

// FindByNotification trả về các lần gửi của một thông báo, mới nhất trước
func (s *DeliveryHistoryService) FindByNotification(ctx context.Context, notificationID primitive.ObjectID) ([]models.DeliveryHistory, error) {
	filter := bson.M{"notificationId": notificationID}
	opts := options.Find().SetSort(bson.D{{Key: "attemptedAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// PurgeOlderThan xóa các bản ghi lịch sử gửi cũ hơn daysOld ngày,
// trả về số bản ghi đã xóa. Cleanup worker gọi định kỳ.
func (s *DeliveryHistoryService) PurgeOlderThan(ctx context.Context, daysOld int) (int64, error) {
	cutoff := utility.CurrentTimeInMilli() - int64(daysOld)*24*60*60*1000

	filter := bson.M{"attemptedAt": bson.M{"$lt": cutoff}}

	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}
