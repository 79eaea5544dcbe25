package handler

import (
	"fmt"

	"food_bridge/core/api/dto"
	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/api/services"
	"food_bridge/core/common"

	"github.com/gofiber/fiber/v3"
)

// VolunteerHandler xử lý các request liên quan đến hồ sơ tình nguyện viên
type VolunteerHandler struct {
	*BaseHandler[models.Volunteer, dto.VolunteerCreateInput, dto.VolunteerUpdateInput]
	volunteerService *services.VolunteerService
}

// NewVolunteerHandler tạo một instance mới của VolunteerHandler
func NewVolunteerHandler() (*VolunteerHandler, error) {
	volunteerService, err := services.NewVolunteerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create volunteer service: %v", err)
	}

	handler := &VolunteerHandler{
		volunteerService: volunteerService,
	}
	// Truyền volunteerService để DeleteById đi qua kiểm tra quan hệ trước khi xóa
	handler.BaseHandler = NewBaseHandler[models.Volunteer, dto.VolunteerCreateInput, dto.VolunteerUpdateInput](volunteerService)

	return handler, nil
}

// HandleGetMe trả về hồ sơ tình nguyện viên của tài khoản đang gọi
func (h *VolunteerHandler) HandleGetMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := actorIDFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		volunteer, err := h.volunteerService.FindOneById(requestContext(c), actorID)
		h.HandleResponse(c, volunteer, err)
		return nil
	})
}

// HandleUpdateMe tình nguyện viên tự cập nhật hồ sơ của mình.
// Chỉ các field có trong input mới được ghi.
func (h *VolunteerHandler) HandleUpdateMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := actorIDFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.VolunteerUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.validateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set := map[string]interface{}{}
		if input.Name != nil {
			set["name"] = *input.Name
		}
		if input.FullName != nil {
			set["fullName"] = *input.FullName
		}
		if input.Display != nil {
			set["displayName"] = *input.Display
		}
		if input.Email != nil {
			set["email"] = *input.Email
		}
		if input.Phone != nil {
			set["phone"] = *input.Phone
		}
		if input.PhotoURL != nil {
			set["photoUrl"] = *input.PhotoURL
		}

		if len(set) == 0 {
			volunteer, err := h.volunteerService.FindOneById(requestContext(c), actorID)
			h.HandleResponse(c, volunteer, err)
			return nil
		}

		volunteer, err := h.volunteerService.UpdateById(requestContext(c), actorID, &services.UpdateData{Set: set})
		h.HandleResponse(c, volunteer, err)
		return nil
	})
}
