package notification

import (
	models "food_bridge/core/api/models/mongodb"
)

// Target là một đích gửi của thông báo: kênh và địa chỉ nhận.
type Target struct {
	Channel   string // email | webhook
	Recipient string // Địa chỉ email hoặc URL webhook
}

// FindTargets quyết định các đích gửi cho một loại thông báo:
//   - readiness_confirmed gửi email cho tình nguyện viên được phân công
//   - pickup_confirmed và delivery_confirmed gửi email cho cửa hàng
//   - mọi loại gửi thêm bản sao webhook khi webhookURL được cấu hình
//
// Email rỗng thì kênh email bị bỏ qua: document Notification vẫn được ghi,
// chỉ không có lần gửi nào cho kênh đó.
func FindTargets(notificationType string, storeEmail string, volunteerEmail string, webhookURL string) []Target {
	targets := []Target{}

	switch notificationType {
	case models.NotificationTypeReadinessConfirmed:
		if volunteerEmail != "" {
			targets = append(targets, Target{
				Channel:   models.DeliveryChannelEmail,
				Recipient: volunteerEmail,
			})
		}
	case models.NotificationTypePickupConfirmed, models.NotificationTypeDeliveryConfirmed:
		if storeEmail != "" {
			targets = append(targets, Target{
				Channel:   models.DeliveryChannelEmail,
				Recipient: storeEmail,
			})
		}
	}

	if webhookURL != "" {
		targets = append(targets, Target{
			Channel:   models.DeliveryChannelWebhook,
			Recipient: webhookURL,
		})
	}

	return targets
}
