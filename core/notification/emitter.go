package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/api/services"
	"food_bridge/core/global"
	"food_bridge/core/utility"

	"github.com/sirupsen/logrus"
)

// Emitter phát thông báo sau một chuyển trạng thái lịch thành công:
// render nội dung từ template, ghi document Notification (write-once)
// rồi xếp một lần gửi vào delivery queue cho từng đích.
//
// Toàn bộ là best-effort, at-least-once: lỗi ở bất kỳ bước nào chỉ được
// log chứ không bao giờ trả ngược về thao tác nghiệp vụ. Mutation đã
// thành công thì kết quả của nó không phụ thuộc vào việc thông báo có
// phát được hay không.
type Emitter struct {
	notificationService *services.NotificationService
	queueService        *services.DeliveryQueueService
	storeService        *services.StoreService
	volunteerService    *services.VolunteerService
	loc                 *time.Location
}

var (
	emitterInstance *Emitter
	emitterErr      error
	emitterOnce     sync.Once
)

// GetEmitter trả về Emitter dùng chung, khởi tạo ở lần gọi đầu tiên.
func GetEmitter() (*Emitter, error) {
	emitterOnce.Do(func() {
		notificationService, err := services.NewNotificationService()
		if err != nil {
			emitterErr = fmt.Errorf("failed to create notification service: %w", err)
			return
		}

		queueService, err := services.NewDeliveryQueueService()
		if err != nil {
			emitterErr = fmt.Errorf("failed to create delivery queue service: %w", err)
			return
		}

		storeService, err := services.NewStoreService()
		if err != nil {
			emitterErr = fmt.Errorf("failed to create store service: %w", err)
			return
		}

		volunteerService, err := services.NewVolunteerService()
		if err != nil {
			emitterErr = fmt.Errorf("failed to create volunteer service: %w", err)
			return
		}

		tzName := ""
		if global.MongoDB_ServerConfig != nil {
			tzName = global.MongoDB_ServerConfig.ReportTimezone
		}

		emitterInstance = &Emitter{
			notificationService: notificationService,
			queueService:        queueService,
			storeService:        storeService,
			volunteerService:    volunteerService,
			loc:                 utility.LoadLocationOrUTC(tzName),
		}
	})
	return emitterInstance, emitterErr
}

// EmitReadinessConfirmed phát thông báo "hàng đã sẵn sàng" cho tình nguyện
// viên được phân công. Lịch chưa gán tình nguyện viên thì không có gì để
// báo cho ai: KHÔNG ghi document Notification nào.
func (e *Emitter) EmitReadinessConfirmed(ctx context.Context, schedule *models.Schedule) {
	if !schedule.HasVolunteer() {
		fmt.Printf("🔔 [NOTIFICATION] Lịch %s chưa gán tình nguyện viên, bỏ qua thông báo sẵn sàng\n", schedule.ID.Hex())
		return
	}
	e.emit(ctx, models.NotificationTypeReadinessConfirmed, schedule)
}

// EmitPickupConfirmed phát thông báo "đã lấy hàng" cho cửa hàng.
func (e *Emitter) EmitPickupConfirmed(ctx context.Context, schedule *models.Schedule) {
	e.emit(ctx, models.NotificationTypePickupConfirmed, schedule)
}

// EmitDeliveryConfirmed phát thông báo "đã giao hàng" cho cửa hàng.
func (e *Emitter) EmitDeliveryConfirmed(ctx context.Context, schedule *models.Schedule) {
	e.emit(ctx, models.NotificationTypeDeliveryConfirmed, schedule)
}

// emit render template, ghi Notification rồi enqueue các lần gửi.
func (e *Emitter) emit(ctx context.Context, notificationType string, schedule *models.Schedule) {
	template, err := FindTemplate(notificationType)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"type":  notificationType,
			"error": err.Error(),
		}).Error("Không tìm thấy template thông báo")
		return
	}

	payload := map[string]interface{}{
		"storeName":     schedule.StoreName,
		"volunteerName": schedule.VolunteerName,
		"pickupDate":    utility.FormatReportDate(schedule.PickupDate, e.loc),
	}
	subject, content := RenderTemplate(template, payload)

	created, err := e.notificationService.InsertOne(ctx, models.Notification{
		Type:        notificationType,
		ScheduleID:  schedule.ID,
		StoreID:     schedule.StoreID,
		VolunteerID: schedule.VolunteerID,
		Message:     content,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"type":       notificationType,
			"scheduleId": schedule.ID.Hex(),
			"error":      err.Error(),
		}).Error("Không ghi được notification")
		return
	}

	storeEmail, volunteerEmail := e.resolveRecipientEmails(ctx, schedule)
	webhookURL := ""
	if global.MongoDB_ServerConfig != nil {
		webhookURL = global.MongoDB_ServerConfig.NotifyWebhookURL
	}

	targets := FindTargets(notificationType, storeEmail, volunteerEmail, webhookURL)
	enqueued := 0
	for _, target := range targets {
		_, err := e.queueService.Enqueue(ctx, models.DeliveryQueueItem{
			NotificationID: created.ID,
			Channel:        target.Channel,
			Recipient:      target.Recipient,
			Subject:        subject,
			Content:        content,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"notificationId": created.ID.Hex(),
				"channel":        target.Channel,
				"error":          err.Error(),
			}).Error("Không xếp được lần gửi vào delivery queue")
			continue
		}
		enqueued++
	}

	fmt.Printf("🔔 [NOTIFICATION] Đã phát %s cho lịch %s (%d/%d lần gửi vào queue)\n",
		notificationType, schedule.ID.Hex(), enqueued, len(targets))
}

// resolveRecipientEmails tra email liên hệ từ hồ sơ cửa hàng và tình nguyện
// viên của lịch. Tra lỗi hoặc hồ sơ không có email thì trả chuỗi rỗng,
// FindTargets sẽ bỏ qua kênh email tương ứng.
func (e *Emitter) resolveRecipientEmails(ctx context.Context, schedule *models.Schedule) (string, string) {
	storeEmail := ""
	if store, err := e.storeService.FindOneById(ctx, schedule.StoreID); err == nil {
		storeEmail = store.Email
	} else {
		logrus.WithFields(logrus.Fields{
			"storeId": schedule.StoreID.Hex(),
			"error":   err.Error(),
		}).Warn("Không tra được email cửa hàng cho thông báo")
	}

	volunteerEmail := ""
	if schedule.HasVolunteer() {
		if volunteer, err := e.volunteerService.FindOneById(ctx, *schedule.VolunteerID); err == nil {
			volunteerEmail = volunteer.Email
		} else {
			logrus.WithFields(logrus.Fields{
				"volunteerId": schedule.VolunteerID.Hex(),
				"error":       err.Error(),
			}).Warn("Không tra được email tình nguyện viên cho thông báo")
		}
	}

	return storeEmail, volunteerEmail
}
