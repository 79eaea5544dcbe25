package handler

import (
	"fmt"
	"strconv"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// NotificationHandler xử lý các request liên quan đến thông báo trong ứng dụng.
// Thông báo chỉ được tạo bởi emitter nội bộ sau các bước xác nhận lịch hẹn,
// nên handler này chỉ phục vụ đọc: staff đọc toàn bộ qua CRUD chuẩn,
// store/volunteer đọc hộp thư của mình qua HandleMine.
type NotificationHandler struct {
	*BaseHandler[models.Notification, models.Notification, models.Notification]
	notificationService *services.NotificationService
}

// NewNotificationHandler tạo một instance mới của NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := services.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}

	handler := &NotificationHandler{
		notificationService: notificationService,
	}
	handler.BaseHandler = NewBaseHandler[models.Notification, models.Notification, models.Notification](notificationService)

	return handler, nil
}

// HandleMine trả về hộp thư thông báo của người gọi, mới nhất trước.
// Staff thấy toàn bộ, store/volunteer chỉ thấy thông báo nhắm đến mình.
// Query param limit giới hạn số bản ghi, mặc định 50.
func (h *NotificationHandler) HandleMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var limit int64
		if limitStr := c.Query("limit", ""); limitStr != "" {
			parsed, err := strconv.ParseInt(limitStr, 10, 64)
			if err == nil && parsed > 0 {
				limit = parsed
			}
		}

		notifications, err := h.notificationService.FindMine(requestContext(c), limit)
		h.HandleResponse(c, notifications, err)
		return nil
	})
}
