package handler

import (
	"fmt"

	"food_bridge/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// CoverageHandler xử lý request báo cáo phủ sóng lịch lấy hàng trên các cửa hàng.
// Không có CRUD: phủ sóng là view tính theo yêu cầu, không phải collection.
type CoverageHandler struct {
	coverageService *services.CoverageService
}

// NewCoverageHandler tạo một instance mới của CoverageHandler
func NewCoverageHandler() (*CoverageHandler, error) {
	coverageService, err := services.NewCoverageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create coverage service: %v", err)
	}

	return &CoverageHandler{
		coverageService: coverageService,
	}, nil
}

// HandleSummary staff xem phủ sóng lịch: cửa hàng nào đã có lịch lấy hàng,
// cửa hàng nào chưa, tổng số lịch và số tình nguyện viên đang hoạt động.
// Tính tại thời điểm gọi (refresh tường minh), không phải subscription sống.
func (h *CoverageHandler) HandleSummary(c fiber.Ctx) error {
	summary, err := h.coverageService.Summary(requestContext(c))
	if err != nil {
		WriteResponse(c, nil, err)
		return nil
	}

	WriteResponse(c, summary, nil)
	return nil
}
