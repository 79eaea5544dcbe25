package delivery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/api/services"
	"food_bridge/core/delivery/channels"
	"food_bridge/core/global"
	"food_bridge/core/logger"
	"food_bridge/core/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// Processor là worker nền rút delivery_queue theo batch và gửi từng item
// qua kênh của nó. Gửi là at-least-once: item lỗi được retry với backoff
// lũy thừa (2^retryCount phút) tới hạn mức retry rồi đánh dấu failed.
// Mỗi lần thử, thành công hay thất bại, đều được ghi vào delivery_history.
type Processor struct {
	queue          *Queue
	queueService   *services.DeliveryQueueService
	historyService *services.DeliveryHistoryService

	emailConfig    channels.EmailConfig
	webhookTimeout time.Duration

	interval           time.Duration
	batchSize          int
	maxRetriesFallback int
}

// NewProcessor tạo Processor từ cấu hình server đã nạp.
func NewProcessor() (*Processor, error) {
	queue, err := NewQueue()
	if err != nil {
		return nil, err
	}

	queueService, err := services.NewDeliveryQueueService()
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery queue service: %w", err)
	}

	historyService, err := services.NewDeliveryHistoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery history service: %w", err)
	}

	cfg := global.MongoDB_ServerConfig
	if cfg == nil {
		return nil, fmt.Errorf("server config is not loaded")
	}

	interval := time.Duration(cfg.DeliveryIntervalS) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}
	batchSize := cfg.DeliveryBatchSize
	if batchSize <= 0 {
		batchSize = 10
	}

	return &Processor{
		queue:          queue,
		queueService:   queueService,
		historyService: historyService,
		emailConfig: channels.EmailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		},
		webhookTimeout:     time.Duration(cfg.NotifyWebhookTimeout) * time.Second,
		interval:           interval,
		batchSize:          batchSize,
		maxRetriesFallback: cfg.DeliveryMaxRetries,
	}, nil
}

// RetryBackoff tính khoảng chờ trước lần thử tiếp theo: 2^retryCount phút.
func RetryBackoff(retryCount int) time.Duration {
	return time.Duration(math.Pow(2, float64(retryCount))) * time.Minute
}

// maxRetriesFor ưu tiên hạn mức ghi trên item, fallback về cấu hình server.
func (p *Processor) maxRetriesFor(item *models.DeliveryQueueItem) int {
	if item.MaxRetries > 0 {
		return item.MaxRetries
	}
	if p.maxRetriesFallback > 0 {
		return p.maxRetriesFallback
	}
	return 3
}

// handleRetryOrFail tăng retryCount; chưa chạm hạn mức thì đặt lại pending
// với nextRetryAt theo backoff, chạm rồi thì đánh dấu failed. Item failed
// được giữ lại để đối soát, cleanup worker xóa sau.
func (p *Processor) handleRetryOrFail(ctx context.Context, item *models.DeliveryQueueItem, sendErr error) {
	log := logger.GetAppLogger()
	item.RetryCount++

	if item.RetryCount < p.maxRetriesFor(item) {
		nextRetryAt := utility.CurrentTimeInMilli() + RetryBackoff(item.RetryCount).Milliseconds()
		updateData := services.UpdateData{
			Set: map[string]interface{}{
				"status":      models.DeliveryStatusPending,
				"retryCount":  item.RetryCount,
				"nextRetryAt": nextRetryAt,
				"lastError":   sendErr.Error(),
			},
		}
		if _, err := p.queueService.UpdateOne(ctx, bson.M{"_id": item.ID}, updateData, nil); err != nil {
			log.WithError(err).WithField("queueItemId", item.ID.Hex()).Error("📦 [DELIVERY] Không đặt lại được item để retry")
		}
		return
	}

	p.markFailed(ctx, item, sendErr.Error())
}

// markFailed đánh dấu item failed với lý do, không đụng nextRetryAt.
func (p *Processor) markFailed(ctx context.Context, item *models.DeliveryQueueItem, reason string) {
	updateData := services.UpdateData{
		Set: map[string]interface{}{
			"status":     models.DeliveryStatusFailed,
			"retryCount": item.RetryCount,
			"lastError":  reason,
		},
	}
	if _, err := p.queueService.UpdateOne(ctx, bson.M{"_id": item.ID}, updateData, nil); err != nil {
		logger.GetAppLogger().WithError(err).WithField("queueItemId", item.ID.Hex()).Error("📦 [DELIVERY] Không đánh dấu được item failed")
	}
}

// ProcessQueueItem gửi một item và ghi lần thử vào delivery_history.
func (p *Processor) ProcessQueueItem(ctx context.Context, item *models.DeliveryQueueItem) {
	log := logger.GetAppLogger()

	start := time.Now()
	sendErr := p.send(ctx, item)
	durationMs := time.Since(start).Milliseconds()

	historyStatus := models.DeliveryStatusSent
	errMsg := ""
	if sendErr != nil {
		historyStatus = models.DeliveryStatusFailed
		errMsg = sendErr.Error()
	}
	if err := p.historyService.RecordAttempt(ctx, item, historyStatus, errMsg, durationMs); err != nil {
		log.WithError(err).WithField("queueItemId", item.ID.Hex()).Warn("📦 [DELIVERY] Không ghi được delivery history")
	}

	if sendErr == nil {
		updateData := services.UpdateData{
			Set: map[string]interface{}{
				"status": models.DeliveryStatusSent,
			},
		}
		if _, err := p.queueService.UpdateOne(ctx, bson.M{"_id": item.ID}, updateData, nil); err != nil {
			log.WithError(err).WithField("queueItemId", item.ID.Hex()).Warn("📦 [DELIVERY] Không đánh dấu được item sent")
		}
		return
	}

	// Kênh tắt không tự lành trong vòng đời process: fail thẳng, không retry.
	if errors.Is(sendErr, channels.ErrNotConfigured) {
		log.WithFields(map[string]interface{}{
			"queueItemId": item.ID.Hex(),
			"channel":     item.Channel,
		}).Warn("📦 [DELIVERY] Kênh chưa được cấu hình, đánh dấu failed")
		p.markFailed(ctx, item, sendErr.Error())
		return
	}

	log.WithError(sendErr).WithFields(map[string]interface{}{
		"queueItemId": item.ID.Hex(),
		"channel":     item.Channel,
		"retryCount":  item.RetryCount,
	}).Warn("📦 [DELIVERY] Gửi thất bại")
	p.handleRetryOrFail(ctx, item, sendErr)
}

// send chọn kênh gửi theo item.Channel.
func (p *Processor) send(ctx context.Context, item *models.DeliveryQueueItem) error {
	switch item.Channel {
	case models.DeliveryChannelEmail:
		return channels.SendEmail(ctx, p.emailConfig, item.Recipient, item.Subject, item.Content)
	case models.DeliveryChannelWebhook:
		return channels.SendWebhook(ctx, item.Recipient, channels.WebhookPayload{
			NotificationID: item.NotificationID.Hex(),
			TraceID:        item.TraceID,
			Subject:        item.Subject,
			Content:        item.Content,
			Timestamp:      utility.CurrentTimeInMilli(),
		}, p.webhookTimeout)
	default:
		return fmt.Errorf("unsupported channel: %s", item.Channel)
	}
}

// Start chạy vòng xử lý nền cho tới khi ctx bị hủy. Panic trong vòng
// tick được recover và vòng được khởi động lại sau một khoảng delay
// tăng dần.
func (p *Processor) Start(ctx context.Context) {
	retryDelay := 5 * time.Second
	maxRetryDelay := 60 * time.Second

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.GetAppLogger().WithFields(map[string]interface{}{
						"panic": r,
					}).Error("📦 [DELIVERY] Processor panic, khởi động lại sau delay")
					time.Sleep(retryDelay)
					retryDelay *= 2
					if retryDelay > maxRetryDelay {
						retryDelay = maxRetryDelay
					}
				} else {
					retryDelay = 5 * time.Second
				}
			}()
			p.run(ctx)
		}()
	}
}

// run là vòng tick chính: mỗi chu kỳ claim một batch rồi xử lý tuần tự.
func (p *Processor) run(ctx context.Context) {
	log := logger.GetAppLogger()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			items, err := p.queue.Claim(ctx, p.batchSize)
			if err != nil {
				log.WithError(err).Error("📦 [DELIVERY] Không claim được batch từ delivery queue")
				continue
			}
			if len(items) == 0 {
				continue
			}

			for i := range items {
				item := &items[i]
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.WithFields(map[string]interface{}{
								"panic":       r,
								"queueItemId": item.ID.Hex(),
							}).Error("📦 [DELIVERY] Panic khi xử lý item, đặt lại pending")
							updateData := services.UpdateData{
								Set: map[string]interface{}{
									"status": models.DeliveryStatusPending,
								},
							}
							p.queueService.UpdateOne(ctx, bson.M{"_id": item.ID}, updateData, nil)
						}
					}()
					p.ProcessQueueItem(ctx, item)
				}()
			}
		}
	}
}
