package dto

// ReportCursorInput con trỏ phân trang cho báo cáo quyên góp (tầng transport)
// Lấy từ (date, id) của document cuối cùng trong trang trước đó.
type ReportCursorInput struct {
	Date int64  `json:"date" validate:"required"` // Giá trị date của document cuối trang trước (timestamp milliseconds)
	ID   string `json:"id" validate:"required"`   // _id của document cuối trang trước (dạng string ObjectID)
}

// DonationReportFilter bộ lọc chung cho các endpoint báo cáo (tầng transport)
// Các filter text match theo substring, không phân biệt hoa thường.
// DateFrom/DateTo là ngày YYYY-MM-DD, range tính trọn ngày theo timezone báo cáo
// (DateFrom từ 00:00:00, DateTo đến 23:59:59.999).
type DonationReportFilter struct {
	Volunteer string `json:"volunteer,omitempty" validate:"omitempty,no_xss"`             // Lọc theo tên tình nguyện viên (substring)
	Store     string `json:"store,omitempty" validate:"omitempty,no_xss"`                 // Lọc theo tên cửa hàng (substring)
	FoodType  string `json:"foodType,omitempty" validate:"omitempty,no_xss"`              // Lọc theo loại thực phẩm (substring, match bất kỳ dòng hàng nào)
	DateFrom  string `json:"dateFrom,omitempty" validate:"omitempty,datetime=2006-01-02"` // Từ ngày (YYYY-MM-DD, inclusive)
	DateTo    string `json:"dateTo,omitempty" validate:"omitempty,datetime=2006-01-02"`   // Đến ngày (YYYY-MM-DD, inclusive)
}

// DonationReportQueryInput dữ liệu đầu vào cho trang báo cáo quyên góp (tầng transport)
// Trả về một trang dữ liệu theo cursor; trang ngắn hơn pageSize nghĩa là đã hết dữ liệu.
type DonationReportQueryInput struct {
	DonationReportFilter
	PageSize int                `json:"pageSize,omitempty" validate:"omitempty,oneof=25 30 50"` // Kích thước trang: 25, 30 hoặc 50 (mặc định: 30)
	Cursor   *ReportCursorInput `json:"cursor,omitempty"`                                       // Con trỏ trang tiếp theo (bỏ trống = trang đầu)
}

// DonationSummaryQueryInput dữ liệu đầu vào cho tổng hợp báo cáo (tầng transport)
// Quét toàn bộ bản ghi khớp filter trong một lần, không phân trang.
type DonationSummaryQueryInput struct {
	DonationReportFilter
}

// DonationExportInput dữ liệu đầu vào khi xuất CSV báo cáo quyên góp (tầng transport)
type DonationExportInput struct {
	DonationReportFilter
}
