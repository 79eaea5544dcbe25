package handler

import (
	"fmt"

	"food_bridge/core/api/dto"
	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/api/services"
	"food_bridge/core/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreHandler xử lý các request liên quan đến hồ sơ cửa hàng quyên góp
type StoreHandler struct {
	*BaseHandler[models.Store, dto.StoreCreateInput, dto.StoreUpdateInput]
	storeService *services.StoreService
}

// NewStoreHandler tạo một instance mới của StoreHandler
func NewStoreHandler() (*StoreHandler, error) {
	storeService, err := services.NewStoreService()
	if err != nil {
		return nil, fmt.Errorf("failed to create store service: %v", err)
	}

	handler := &StoreHandler{
		storeService: storeService,
	}
	// Truyền storeService (không phải BaseServiceMongoImpl) để DeleteById
	// đi qua kiểm tra quan hệ trước khi xóa
	handler.BaseHandler = NewBaseHandler[models.Store, dto.StoreCreateInput, dto.StoreUpdateInput](storeService)

	return handler, nil
}

// HandleApprove staff duyệt cửa hàng tham gia nhận lịch lấy hàng.
// Duyệt lại cửa hàng đã duyệt không gây lỗi.
func (h *StoreHandler) HandleApprove(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		storeID, _ := primitive.ObjectIDFromHex(id)
		store, err := h.storeService.Approve(requestContext(c), storeID)
		h.HandleResponse(c, store, err)
		return nil
	})
}

// HandleGetMe trả về hồ sơ cửa hàng của tài khoản đang gọi.
// ActorID trong Locals trỏ tới document hồ sơ trong collection stores.
func (h *StoreHandler) HandleGetMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := actorIDFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		store, err := h.storeService.FindOneById(requestContext(c), actorID)
		h.HandleResponse(c, store, err)
		return nil
	})
}

// HandleUpdateMe cửa hàng tự cập nhật hồ sơ của mình.
// Chỉ các field có trong input mới được ghi; isApproved không nằm trong
// input nên cửa hàng không tự duyệt được mình.
func (h *StoreHandler) HandleUpdateMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := actorIDFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.StoreUpdateInput
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
		if input.Email != nil {
			set["email"] = *input.Email
		}
		if input.Phone != nil {
			set["phone"] = *input.Phone
		}
		if input.Address != nil {
			set["address"] = *input.Address
		}
		if input.UnavailableDates != nil {
			set["unavailableDates"] = input.UnavailableDates
		}

		if len(set) == 0 {
			store, err := h.storeService.FindOneById(requestContext(c), actorID)
			h.HandleResponse(c, store, err)
			return nil
		}

		store, err := h.storeService.UpdateById(requestContext(c), actorID, &services.UpdateData{Set: set})
		h.HandleResponse(c, store, err)
		return nil
	})
}

// HandleUnavailableDates cửa hàng thêm/gỡ ngày nghỉ trên hồ sơ của mình.
// Ngày nghỉ chặn việc tạo lịch lấy hàng rơi vào ngày đó.
func (h *StoreHandler) HandleUnavailableDates(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := actorIDFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.StoreUnavailableDatesInput
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

		if len(input.Add) == 0 && len(input.Remove) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Phải có ít nhất một ngày trong add hoặc remove",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		ctx := requestContext(c)
		var store models.Store
		for _, date := range input.Add {
			store, err = h.storeService.AddUnavailableDate(ctx, actorID, date)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}
		for _, date := range input.Remove {
			store, err = h.storeService.RemoveUnavailableDate(ctx, actorID, date)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		h.HandleResponse(c, store, nil)
		return nil
	})
}
