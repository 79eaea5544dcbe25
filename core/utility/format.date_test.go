// Package utility - Test các helper xử lý ngày theo múi giờ.
package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadLocationOrUTC(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocationOrUTC(""), "Tên rỗng trả về UTC")
	assert.Equal(t, time.UTC, LoadLocationOrUTC("Not/AZone"), "Tên sai trả về UTC thay vì lỗi")

	loc := LoadLocationOrUTC("Asia/Ho_Chi_Minh")
	assert.Equal(t, "Asia/Ho_Chi_Minh", loc.String())
}

func TestStartOfDayMilli(t *testing.T) {
	loc := time.UTC
	ms := time.Date(2025, 3, 15, 18, 45, 30, 500_000_000, loc).UnixMilli()
	expected := time.Date(2025, 3, 15, 0, 0, 0, 0, loc).UnixMilli()

	assert.Equal(t, expected, StartOfDayMilli(ms, loc))
}

func TestStartOfDayMilli_TheoMuiGio(t *testing.T) {
	// 01:00 ngày 15/03 giờ Việt Nam là 18:00 ngày 14/03 UTC:
	// đầu ngày phụ thuộc múi giờ dùng để tính
	hcm := LoadLocationOrUTC("Asia/Ho_Chi_Minh")
	ms := time.Date(2025, 3, 15, 1, 0, 0, 0, hcm).UnixMilli()

	startHCM := StartOfDayMilli(ms, hcm)
	startUTC := StartOfDayMilli(ms, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, hcm).UnixMilli(), startHCM)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC).UnixMilli(), startUTC)
}

func TestEndOfDayMilli(t *testing.T) {
	loc := time.UTC
	ms := time.Date(2025, 3, 15, 8, 0, 0, 0, loc).UnixMilli()

	end := EndOfDayMilli(ms, loc)
	assert.Equal(t, StartOfDayMilli(ms, loc)+24*60*60*1000-1, end, "Cuối ngày là 23:59:59.999")
}

func TestParseDateOnly(t *testing.T) {
	loc := time.UTC

	ms, err := ParseDateOnly("2025-03-15", loc)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, loc).UnixMilli(), ms)

	_, err = ParseDateOnly("15/03/2025", loc)
	assert.Error(t, err, "Chỉ nhận định dạng YYYY-MM-DD")

	_, err = ParseDateOnly("2025-13-45", loc)
	assert.Error(t, err)
}

func TestDateOnlyString_RoundTrip(t *testing.T) {
	loc := LoadLocationOrUTC("Asia/Ho_Chi_Minh")

	ms, err := ParseDateOnly("2025-03-15", loc)
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-15", DateOnlyString(ms, loc))

	// Giữa ngày vẫn ra cùng chuỗi ngày
	assert.Equal(t, "2025-03-15", DateOnlyString(ms+13*60*60*1000, loc))
}

func TestFormatReportDate(t *testing.T) {
	loc := time.UTC
	ms := time.Date(2025, 3, 5, 10, 0, 0, 0, loc).UnixMilli()

	assert.Equal(t, "05/03/2025", FormatReportDate(ms, loc), "Báo cáo dùng dd/MM/yyyy có số 0 đệm")
	assert.Equal(t, "", FormatReportDate(0, loc), "Timestamp 0 là chưa có ngày, trả chuỗi rỗng")
}

func TestFarFutureMilli(t *testing.T) {
	// Sentinel là 2100-01-01 00:00:00 UTC, đủ xa để thắng mọi ngày thật
	assert.Equal(t, time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), FarFutureMilli)
}
