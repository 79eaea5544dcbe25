package handler

import (
	"fmt"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/api/services"
	"food_bridge/core/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryHistoryHandler xử lý các request tra cứu lịch sử gửi thông báo.
// Bản ghi lịch sử do delivery processor ghi, API chỉ đọc (staff) để đối soát
// các lần gửi email/webhook.
type DeliveryHistoryHandler struct {
	*BaseHandler[models.DeliveryHistory, models.DeliveryHistory, models.DeliveryHistory]
	historyService *services.DeliveryHistoryService
}

// NewDeliveryHistoryHandler tạo mới DeliveryHistoryHandler
func NewDeliveryHistoryHandler() (*DeliveryHistoryHandler, error) {
	historyService, err := services.NewDeliveryHistoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery history service: %v", err)
	}

	handler := &DeliveryHistoryHandler{
		historyService: historyService,
	}
	handler.BaseHandler = NewBaseHandler[models.DeliveryHistory, models.DeliveryHistory, models.DeliveryHistory](historyService)

	// Lịch sử gửi không chứa trường nhạy cảm, mở rộng filter cho tra cứu
	handler.filterOptions = FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq",
			"$gt",
			"$gte",
			"$lt",
			"$lte",
			"$in",
			"$nin",
			"$exists",
		},
		MaxFields: 10,
	}

	return handler, nil
}

// HandleByNotification trả về toàn bộ các lần gửi của một thông báo,
// mới nhất trước. Dùng để truy vết một thông báo đã được gửi đi đâu.
func (h *DeliveryHistoryHandler) HandleByNotification(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idStr := c.Params("id")
		notificationID, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID thông báo không hợp lệ: %s", idStr),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		attempts, err := h.historyService.FindByNotification(requestContext(c), notificationID)
		h.HandleResponse(c, attempts, err)
		return nil
	})
}
