package worker

import (
	"context"
	"time"

	"food_bridge/core/api/services"
	"food_bridge/core/logger"
)

// DeliveryCleanupWorker dọn dẹp định kỳ cho hệ gửi thông báo:
//   - đặt lại item kẹt ở processing quá staleMinutes về pending để retry
//   - xóa item sent/failed cũ khỏi delivery_queue
//   - xóa bản ghi delivery_history cũ
type DeliveryCleanupWorker struct {
	queueService   *services.DeliveryQueueService
	historyService *services.DeliveryHistoryService
	interval       time.Duration // Khoảng thời gian giữa các lần chạy
	staleMinutes   int           // Item processing quá lâu hơn mức này coi là kẹt
	retainDays     int           // Số ngày giữ item đã kết thúc và history
}

// NewDeliveryCleanupWorker tạo mới DeliveryCleanupWorker.
// interval dưới 30 giây được nâng lên 1 phút, staleMinutes mặc định 5,
// retainDays mặc định 7.
func NewDeliveryCleanupWorker(interval time.Duration, staleMinutes int, retainDays int) (*DeliveryCleanupWorker, error) {
	queueService, err := services.NewDeliveryQueueService()
	if err != nil {
		return nil, err
	}

	historyService, err := services.NewDeliveryHistoryService()
	if err != nil {
		return nil, err
	}

	if interval < 30*time.Second {
		interval = 1 * time.Minute
	}
	if staleMinutes < 1 {
		staleMinutes = 5
	}
	if retainDays < 1 {
		retainDays = 7
	}

	return &DeliveryCleanupWorker{
		queueService:   queueService,
		historyService: historyService,
		interval:       interval,
		staleMinutes:   staleMinutes,
		retainDays:     retainDays,
	}, nil
}

// Start chạy worker định kỳ cho tới khi ctx bị hủy.
func (w *DeliveryCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":     w.interval.String(),
		"staleMinutes": w.staleMinutes,
		"retainDays":   w.retainDays,
	}).Info("🔄 [DELIVERY_CLEANUP] Starting Delivery Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [DELIVERY_CLEANUP] Delivery Cleanup Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🔄 [DELIVERY_CLEANUP] Panic khi dọn dẹp, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				w.runOnce(ctx)
			}()
		}
	}
}

// runOnce chạy trọn một lượt dọn dẹp.
func (w *DeliveryCleanupWorker) runOnce(ctx context.Context) {
	log := logger.GetAppLogger()

	requeued, err := w.queueService.RequeueStuck(ctx, w.staleMinutes)
	if err != nil {
		log.WithError(err).Error("🔄 [DELIVERY_CLEANUP] Không đặt lại được item kẹt ở processing")
	} else if requeued > 0 {
		log.WithFields(map[string]interface{}{
			"requeued": requeued,
		}).Warn("🔄 [DELIVERY_CLEANUP] Đã đặt lại item kẹt ở processing về pending")
	}

	cleaned, err := w.queueService.CleanupFinished(ctx, w.retainDays)
	if err != nil {
		log.WithError(err).Error("🔄 [DELIVERY_CLEANUP] Không xóa được item đã kết thúc khỏi queue")
	} else if cleaned > 0 {
		log.WithFields(map[string]interface{}{
			"deleted": cleaned,
		}).Info("🔄 [DELIVERY_CLEANUP] Đã xóa item sent/failed cũ khỏi delivery queue")
	}

	purged, err := w.historyService.PurgeOlderThan(ctx, w.retainDays)
	if err != nil {
		log.WithError(err).Error("🔄 [DELIVERY_CLEANUP] Không xóa được delivery history cũ")
	} else if purged > 0 {
		log.WithFields(map[string]interface{}{
			"deleted": purged,
		}).Info("🔄 [DELIVERY_CLEANUP] Đã xóa bản ghi delivery history cũ")
	}
}
