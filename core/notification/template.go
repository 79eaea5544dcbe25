package notification

import (
	"fmt"
	"strings"

	models "food_bridge/core/api/models/mongodb"
)

// MessageTemplate định nghĩa nội dung thông báo cho một loại sự kiện.
// Placeholder dạng {{tên biến}}; biến không có trong payload thay bằng chuỗi rỗng.
type MessageTemplate struct {
	Subject   string
	Content   string
	Variables []string
}

// Template theo loại thông báo. Hệ thống chỉ có ba loại, ứng với ba bước
// xác nhận của vòng đời lịch lấy hàng, nên template cố định trong code
// thay vì tra từ cơ sở dữ liệu.
var messageTemplates = map[string]MessageTemplate{
	models.NotificationTypeReadinessConfirmed: {
		Subject:   "Hàng quyên góp tại {{storeName}} đã sẵn sàng",
		Content:   "Cửa hàng {{storeName}} đã chuẩn bị xong hàng quyên góp cho lịch lấy hàng ngày {{pickupDate}}. Vui lòng đến lấy trong khung giờ đã hẹn.",
		Variables: []string{"storeName", "pickupDate"},
	},
	models.NotificationTypePickupConfirmed: {
		Subject:   "Đã lấy hàng quyên góp từ {{storeName}}",
		Content:   "Tình nguyện viên {{volunteerName}} đã xác nhận lấy hàng quyên góp tại cửa hàng {{storeName}} cho lịch ngày {{pickupDate}}.",
		Variables: []string{"volunteerName", "storeName", "pickupDate"},
	},
	models.NotificationTypeDeliveryConfirmed: {
		Subject:   "Hàng quyên góp từ {{storeName}} đã được giao",
		Content:   "Tình nguyện viên {{volunteerName}} đã giao xong hàng quyên góp của cửa hàng {{storeName}} (lịch ngày {{pickupDate}}). Lịch lấy hàng đã hoàn tất.",
		Variables: []string{"volunteerName", "storeName", "pickupDate"},
	},
}

// FindTemplate trả về template cho một loại thông báo
func FindTemplate(notificationType string) (*MessageTemplate, error) {
	template, ok := messageTemplates[notificationType]
	if !ok {
		return nil, fmt.Errorf("template not found for notification type %q", notificationType)
	}
	return &template, nil
}

// RenderTemplate thay các placeholder {{biến}} trong subject và content
// bằng giá trị tương ứng trong payload. Biến không có giá trị thay bằng rỗng.
func RenderTemplate(template *MessageTemplate, payload map[string]interface{}) (string, string) {
	subject := template.Subject
	content := template.Content

	for _, variable := range template.Variables {
		value, exists := payload[variable]
		if !exists {
			value = ""
		}
		placeholder := "{{" + variable + "}}"
		subject = strings.ReplaceAll(subject, placeholder, fmt.Sprintf("%v", value))
		content = strings.ReplaceAll(content, placeholder, fmt.Sprintf("%v", value))
	}

	return subject, content
}
