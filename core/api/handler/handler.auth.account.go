// Package handler chứa các handler xử lý request HTTP cho API điều phối quyên góp thực phẩm
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

// AccountHandler xử lý các request liên quan đến tài khoản truy cập API
type AccountHandler struct {
	*BaseHandler[models.Account, dto.AccountCreateInput, dto.AccountUpdateInput]
	accountService *services.AccountService
}

// NewAccountHandler tạo một instance mới của AccountHandler
func NewAccountHandler() (*AccountHandler, error) {
	accountService, err := services.NewAccountService()
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %v", err)
	}

	handler := &AccountHandler{
		accountService: accountService,
	}
	handler.BaseHandler = NewBaseHandler[models.Account, dto.AccountCreateInput, dto.AccountUpdateInput](accountService)

	return handler, nil
}

// InsertOne override CRUD chuẩn: tạo tài khoản đi qua AccountService.Create
// để validate actorId theo role và cấp token ngay trong cùng request.
// Token chỉ trả về đúng một lần ở đây (model không serialize token),
// staff chịu trách nhiệm bàn giao cho đối tác.
func (h *AccountHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.AccountCreateInput
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

		account, err := h.accountService.Create(requestContext(c), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"account": account,
			"token":   account.Token,
		}, nil)
		return nil
	})
}

// HandleRotateToken thu hồi token hiện tại của một tài khoản và cấp token mới.
// Chỉ staff gọi (chặn ở router), dùng khi token lộ hoặc bàn giao lại cho đối tác khác.
// Token cũ mất hiệu lực ngay vì middleware tra tài khoản theo token hiện tại.
func (h *AccountHandler) HandleRotateToken(c fiber.Ctx) error {
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

		accountID, _ := primitive.ObjectIDFromHex(id)
		account, err := h.accountService.RotateToken(requestContext(c), accountID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"account": account,
			"token":   account.Token,
		}, nil)
		return nil
	})
}

// HandleMe trả về tài khoản của người gọi đã được middleware resolve.
// Token không nằm trong response (model không serialize token).
func (h *AccountHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		accountID := c.Locals("account_id")
		if accountID == nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Chưa xác thực", common.StatusUnauthorized, nil))
			return nil
		}

		objID, err := primitive.ObjectIDFromHex(accountID.(string))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Account ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		account, err := h.accountService.FindOneById(requestContext(c), objID)
		h.HandleResponse(c, account, err)
		return nil
	})
}
