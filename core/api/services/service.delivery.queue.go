package services

import (
	"context"
	"fmt"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"
	"food_bridge/core/utility"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Item processing quá ngưỡng này coi như processor đã chết giữa chừng,
// được nhặt lại như pending.
const deliveryStaleProcessingMs = 5 * 60 * 1000

// DeliveryQueueService là service quản lý hàng đợi gửi thông báo
type DeliveryQueueService struct {
	*BaseServiceMongoImpl[models.DeliveryQueueItem]
}

// NewDeliveryQueueService tạo mới DeliveryQueueService
func NewDeliveryQueueService() (*DeliveryQueueService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DeliveryQueue)
	if !exist {
		return nil, fmt.Errorf("failed to get delivery_queue collection: %v", common.ErrNotFound)
	}

	return &DeliveryQueueService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.DeliveryQueueItem](collection),
	}, nil
}

// Enqueue đưa một lần gửi vào hàng đợi. TraceID trống được cấp UUID mới
// để lần gửi và các bản ghi history của nó đối soát được với nhau.
func (s *DeliveryQueueService) Enqueue(ctx context.Context, item models.DeliveryQueueItem) (models.DeliveryQueueItem, error) {
	if item.TraceID == "" {
		item.TraceID = uuid.NewString()
	}

	created, err := s.InsertOne(ctx, item)
	if err != nil {
		return created, err
	}

	logrus.WithFields(logrus.Fields{
		"queueItemId": created.ID.Hex(),
		"channel":     created.Channel,
		"traceId":     created.TraceID,
	}).Debug("Đã xếp thông báo vào hàng đợi gửi")

	return created, nil
}

// FindPending tìm các item chờ gửi, gồm:
//   - status "pending"
//   - status "processing" nhưng updatedAt quá cũ (processor crash giữa chừng)
//
// Chỉ lấy item chưa có nextRetryAt hoặc đã đến thời điểm retry,
// xếp theo createdAt tăng dần (gửi cũ trước).
func (s *DeliveryQueueService) FindPending(ctx context.Context, limit int) ([]models.DeliveryQueueItem, error) {
	now := utility.CurrentTimeInMilli()
	staleThreshold := now - deliveryStaleProcessingMs

	filter := bson.M{
		"$and": []bson.M{
			{
				"$or": []bson.M{
					{"status": models.DeliveryStatusPending},
					{
						"status":    models.DeliveryStatusProcessing,
						"updatedAt": bson.M{"$lt": staleThreshold},
					},
				},
			},
			{
				"$or": []bson.M{
					{"nextRetryAt": nil},
					{"nextRetryAt": bson.M{"$lte": now}},
				},
			},
		},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))

	return s.Find(ctx, filter, opts)
}

// MarkProcessing chuyển một loạt item sang trạng thái processing trước khi gửi
func (s *DeliveryQueueService) MarkProcessing(ctx context.Context, ids []interface{}) error {
	if len(ids) == 0 {
		return nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{
		"status":    models.DeliveryStatusProcessing,
		"updatedAt": utility.CurrentTimeInMilli(),
	}}

	_, err := s.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// RequeueStuck nhặt các item kẹt ở processing quá staleMinutes và đưa về pending.
// Trả về số item đã nhặt lại. Cleanup worker gọi định kỳ.
func (s *DeliveryQueueService) RequeueStuck(ctx context.Context, staleMinutes int) (int64, error) {
	now := utility.CurrentTimeInMilli()
	staleThreshold := now - int64(staleMinutes)*60*1000

	filter := bson.M{
		"status":    models.DeliveryStatusProcessing,
		"updatedAt": bson.M{"$lt": staleThreshold},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.DeliveryStatusPending,
		"updatedAt": now,
	}}

	result, err := s.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// CleanupFinished xóa các item đã kết thúc (sent hoặc failed) cũ hơn
// daysOld ngày, trả về số item đã xóa. Item failed được giữ lại trong
// khoảng đó để đối soát trước khi dọn.
func (s *DeliveryQueueService) CleanupFinished(ctx context.Context, daysOld int) (int64, error) {
	cutoff := utility.CurrentTimeInMilli() - int64(daysOld)*24*60*60*1000

	filter := bson.M{
		"status":    bson.M{"$in": []string{models.DeliveryStatusSent, models.DeliveryStatusFailed}},
		"updatedAt": bson.M{"$lt": cutoff},
	}

	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}
