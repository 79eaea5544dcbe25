// Package services - Test validate dòng hàng và tính lại totals của bản ghi quyên góp.
package services

import (
	"strings"
	"testing"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"

	"github.com/stretchr/testify/assert"
)

func TestValidateDonationItems_DanhSachRong(t *testing.T) {
	err := ValidateDonationItems(nil)
	assert.Error(t, err, "Danh sách rỗng phải bị từ chối")

	cErr, ok := err.(*common.Error)
	assert.True(t, ok, "Lỗi phải là *common.Error")
	assert.Equal(t, common.StatusBadRequest, cErr.StatusCode, "Lỗi validate phải trả 400")
}

func TestValidateDonationItems_ThieuLoaiThucPham(t *testing.T) {
	items := []models.DonationItem{
		{FoodType: "Rau củ", Boxes: 2},
		{FoodType: "", Boxes: 1},
	}

	err := ValidateDonationItems(items)
	assert.Error(t, err)
	// Dòng vi phạm đánh số từ 1 để người nhập đối chiếu được với form
	assert.Contains(t, err.Error(), "Dòng hàng 2", "Thông báo lỗi phải chỉ rõ dòng vi phạm")
}

func TestValidateDonationItems_KhongCoSoLuong(t *testing.T) {
	items := []models.DonationItem{
		{FoodType: "Bánh mì", Boxes: 0, Kg: 0.0},
	}

	err := ValidateDonationItems(items)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Dòng hàng 1")
	assert.Contains(t, err.Error(), "Bánh mì", "Thông báo lỗi phải kèm loại thực phẩm của dòng vi phạm")
}

func TestValidateDonationItems_ChiCoThung(t *testing.T) {
	items := []models.DonationItem{
		{FoodType: "Gạo", Boxes: 3},
	}
	assert.NoError(t, ValidateDonationItems(items), "Chỉ có số thùng > 0 vẫn hợp lệ")
}

func TestValidateDonationItems_ChiCoKgDangChuoi(t *testing.T) {
	// Dữ liệu cũ lưu kg dạng chuỗi số, KgValue vẫn đọc được
	items := []models.DonationItem{
		{FoodType: "Trái cây", Boxes: 0, Kg: "4.5"},
	}
	assert.NoError(t, ValidateDonationItems(items), "Kg dạng chuỗi số > 0 vẫn hợp lệ")
}

func TestValidateDonationItems_KgChuoiKhongDocDuoc(t *testing.T) {
	items := []models.DonationItem{
		{FoodType: "Trái cây", Boxes: 0, Kg: "n/a"},
	}
	err := ValidateDonationItems(items)
	assert.Error(t, err, "Kg không đọc được tính 0, dòng không có số lượng phải bị từ chối")
}

func TestRecomputeTotals(t *testing.T) {
	items := []models.DonationItem{
		{FoodType: "Rau củ", Boxes: 2, Kg: 3.5},
		{FoodType: "Gạo", Boxes: 1, Kg: 10},      // int
		{FoodType: "Bánh mì", Boxes: 0, Kg: "2"}, // chuỗi số
		{FoodType: "Khác", Boxes: 4, Kg: "x"},    // chuỗi hỏng tính 0
	}

	totalBoxes, totalKg := RecomputeTotals(items)
	assert.Equal(t, 7, totalBoxes, "Tổng thùng phải là tổng các dòng")
	assert.InDelta(t, 15.5, totalKg, 0.0001, "Tổng kg cộng số, chuỗi số; chuỗi hỏng tính 0")
}

func TestRecomputeTotals_DanhSachRong(t *testing.T) {
	totalBoxes, totalKg := RecomputeTotals(nil)
	assert.Equal(t, 0, totalBoxes)
	assert.Equal(t, 0.0, totalKg)
}

func TestValidateDonationItems_ThongBaoLoiTungDong(t *testing.T) {
	// Mỗi lần chỉ báo dòng vi phạm đầu tiên, sửa xong chạy lại sẽ thấy dòng kế
	items := []models.DonationItem{
		{FoodType: "", Boxes: 1},
		{FoodType: "", Boxes: 1},
	}
	err := ValidateDonationItems(items)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Dòng hàng 1"), "Phải báo dòng vi phạm đầu tiên, got: %s", err.Error())
}
