package utility

import (
	"time"
)

// FarFutureMilli là sentinel thay cho ngày lấy hàng bị thiếu trong các
// phép sắp xếp tăng dần: bản ghi không có ngày luôn rơi xuống cuối danh
// sách thay vì gây lỗi so sánh. Giá trị là 2100-01-01 00:00:00 UTC.
const FarFutureMilli int64 = 4102444800000

// LoadLocationOrUTC load múi giờ theo tên IANA, trả về UTC nếu tên rỗng
// hoặc không hợp lệ.
func LoadLocationOrUTC(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StartOfDayMilli đưa timestamp ms về 00:00:00.000 cùng ngày theo múi giờ.
func StartOfDayMilli(ms int64, loc *time.Location) int64 {
	t := time.UnixMilli(ms).In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start.UnixMilli()
}

// EndOfDayMilli đưa timestamp ms về 23:59:59.999 cùng ngày theo múi giờ.
func EndOfDayMilli(ms int64, loc *time.Location) int64 {
	return StartOfDayMilli(ms, loc) + 24*60*60*1000 - 1
}

// DateOnlyString đổi timestamp ms thành chuỗi "YYYY-MM-DD" theo múi giờ.
func DateOnlyString(ms int64, loc *time.Location) string {
	return time.UnixMilli(ms).In(loc).Format("2006-01-02")
}

// ParseDateOnly parse chuỗi "YYYY-MM-DD" thành timestamp ms đầu ngày theo múi giờ.
func ParseDateOnly(date string, loc *time.Location) (int64, error) {
	t, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// FormatReportDate đổi timestamp ms thành "dd/MM/yyyy" dùng trong báo cáo và CSV.
// Timestamp 0 (chưa có ngày) trả về chuỗi rỗng.
func FormatReportDate(ms int64, loc *time.Location) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).In(loc).Format("02/01/2006")
}
