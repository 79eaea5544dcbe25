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

// DonationHandler xử lý các request liên quan đến bản ghi quyên góp
type DonationHandler struct {
	*BaseHandler[models.Donation, dto.DonationCreateInput, dto.DonationUpdateInput]
	donationService *services.DonationService
}

// NewDonationHandler tạo một instance mới của DonationHandler
func NewDonationHandler() (*DonationHandler, error) {
	donationService, err := services.NewDonationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create donation service: %v", err)
	}

	handler := &DonationHandler{
		donationService: donationService,
	}
	handler.BaseHandler = NewBaseHandler[models.Donation, dto.DonationCreateInput, dto.DonationUpdateInput](donationService)

	return handler, nil
}

// parseDonationCreateInput đọc và validate body tạo bản ghi quyên góp,
// dùng chung cho đường tình nguyện viên tự ghi và đường staff nhập tay
func (h *DonationHandler) parseDonationCreateInput(c fiber.Ctx) (*dto.DonationCreateInput, error) {
	var input dto.DonationCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	if err := h.validateInput(&input); err != nil {
		return nil, err
	}
	return &input, nil
}

// InsertOne override CRUD chuẩn: tình nguyện viên tự ghi nhận quyên góp.
// VolunteerID lấy từ tài khoản đang gọi, giá trị client gửi bị bỏ qua;
// totals backend tự tính; status mặc định pending chờ staff duyệt.
func (h *DonationHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input, err := h.parseDonationCreateInput(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		donation, err := h.donationService.CreateFromVolunteer(requestContext(c), input)
		h.HandleResponse(c, donation, err)
		return nil
	})
}

// HandleManual staff nhập tay bản ghi quyên góp (dữ liệu giấy, dữ liệu cũ).
// Bản ghi nhập tay có createdManually=true và status=completed ngay,
// không qua bước duyệt.
func (h *DonationHandler) HandleManual(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input, err := h.parseDonationCreateInput(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		donation, err := h.donationService.CreateManual(requestContext(c), input)
		h.HandleResponse(c, donation, err)
		return nil
	})
}

// HandleEdit staff sửa bản ghi quyên góp. Items thay đổi thì backend
// validate lại từng dòng và tính lại totals, client không gửi totals.
func (h *DonationHandler) HandleEdit(c fiber.Ctx) error {
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

		var input dto.DonationUpdateInput
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

		donationID, _ := primitive.ObjectIDFromHex(id)
		donation, err := h.donationService.Edit(requestContext(c), donationID, &input)
		h.HandleResponse(c, donation, err)
		return nil
	})
}
