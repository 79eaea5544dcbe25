package delivery

import (
	"context"
	"fmt"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/api/services"
)

// Queue gom bước "nhận việc" của processor: đọc một batch item đến hạn
// rồi đánh dấu processing để các tick sau không nhặt lại.
type Queue struct {
	queueService *services.DeliveryQueueService
}

// NewQueue tạo mới Queue
func NewQueue() (*Queue, error) {
	queueService, err := services.NewDeliveryQueueService()
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery queue service: %w", err)
	}

	return &Queue{
		queueService: queueService,
	}, nil
}

// Claim trả về tối đa limit item đến hạn xử lý, đã được đánh dấu
// processing. Hai bước đọc rồi ghi, không nguyên tử: hai instance chạy
// song song có thể nhặt trùng item. Chấp nhận vì ngữ nghĩa gửi là
// at-least-once; downstream khử trùng lặp bằng traceId.
func (q *Queue) Claim(ctx context.Context, limit int) ([]models.DeliveryQueueItem, error) {
	items, err := q.queueService.FindPending(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]interface{}, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	if err := q.queueService.MarkProcessing(ctx, ids); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Status = models.DeliveryStatusProcessing
	}
	return items, nil
}
