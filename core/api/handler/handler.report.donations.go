package handler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"food_bridge/core/api/dto"
	"food_bridge/core/api/services"
	"food_bridge/core/common"
	"food_bridge/core/global"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler xử lý các request báo cáo quyên góp: trang theo cursor,
// tổng hợp theo nhóm và xuất CSV. Chỉ staff gọi (chặn ở router).
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler tạo một instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := services.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}

	return &ReportHandler{
		reportService: reportService,
	}, nil
}

// parseReportBody đọc và validate body của một request báo cáo.
// Dùng json.Decoder với UseNumber() giống ParseRequestBody của BaseHandler.
func parseReportBody(c fiber.Ctx, input interface{}) error {
	reader := bytes.NewReader(c.Body())
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// HandleQuery trả về một trang báo cáo quyên góp theo cursor.
// Filter áp in-process sau khi đọc trang nên một trang có thể trả về
// ít dòng hơn pageSize dù chưa hết dữ liệu; endOfData mới là dấu hiệu hết.
func (h *ReportHandler) HandleQuery(c fiber.Ctx) error {
	var input dto.DonationReportQueryInput
	if err := parseReportBody(c, &input); err != nil {
		WriteResponse(c, nil, err)
		return nil
	}

	page, err := h.reportService.QueryPage(requestContext(c), &input)
	WriteResponse(c, page, err)
	return nil
}

// HandleSummary tổng hợp toàn bộ bản ghi khớp filter: tổng số bản ghi,
// tổng kg, nhóm theo cửa hàng và nhóm độc lập theo tình nguyện viên.
func (h *ReportHandler) HandleSummary(c fiber.Ctx) error {
	var input dto.DonationSummaryQueryInput
	if err := parseReportBody(c, &input); err != nil {
		WriteResponse(c, nil, err)
		return nil
	}

	summary, err := h.reportService.Summary(requestContext(c), &input)
	WriteResponse(c, summary, err)
	return nil
}

// HandleExport xuất toàn bộ bản ghi khớp filter thành file CSV.
// Response là text/csv thô, không bọc JSON envelope, để sink bên ngoài
// nhận trực tiếp.
func (h *ReportHandler) HandleExport(c fiber.Ctx) error {
	var input dto.DonationExportInput
	if err := parseReportBody(c, &input); err != nil {
		WriteResponse(c, nil, err)
		return nil
	}

	csvData, err := h.reportService.ExportCSV(requestContext(c), &input)
	if err != nil {
		WriteResponse(c, nil, err)
		return nil
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="donations.csv"`)
	return c.SendString(csvData)
}
