// Package services - Test tính phủ sóng lịch lấy hàng trên các cửa hàng.
package services

import (
	"testing"

	models "food_bridge/core/api/models/mongodb"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestComputeCoverage(t *testing.T) {
	storeA := models.Store{ID: primitive.NewObjectID(), Name: "Cửa hàng A", IsApproved: true}
	storeB := models.Store{ID: primitive.NewObjectID(), Name: "Cửa hàng B"}
	storeC := models.Store{ID: primitive.NewObjectID(), Name: "Cửa hàng C", IsApproved: true}

	volunteer1 := primitive.NewObjectID()
	volunteer2 := primitive.NewObjectID()

	schedules := []models.Schedule{
		{StoreID: storeA.ID, VolunteerID: &volunteer1, Status: models.ScheduleStatusScheduled},
		{StoreID: storeA.ID, VolunteerID: &volunteer2, Status: models.ScheduleStatusCancelled},
		{StoreID: storeB.ID, VolunteerID: &volunteer1, Status: models.ScheduleStatusCompleted},
	}

	now := int64(1700000000000)
	summary := ComputeCoverage([]models.Store{storeA, storeB, storeC}, schedules, now)

	assert.Equal(t, int64(3), summary.TotalStores)
	assert.Equal(t, int64(2), summary.CoveredStores, "A và B có lịch, C không")
	assert.Equal(t, int64(1), summary.UncoveredStores)
	assert.Equal(t, int64(3), summary.TotalSchedules)
	assert.Equal(t, int64(2), summary.ActiveVolunteers, "Hai tình nguyện viên khác nhau đang có lịch")
	assert.Equal(t, now, summary.GeneratedAt)

	// Bất biến: covered + uncovered luôn bằng tổng số cửa hàng
	assert.Equal(t, summary.TotalStores, summary.CoveredStores+summary.UncoveredStores)

	// Cửa hàng không có lịch vẫn xuất hiện trong danh sách với Covered = false
	assert.Len(t, summary.Stores, 3)
	byName := map[string]StoreCoverage{}
	for _, sc := range summary.Stores {
		byName[sc.StoreName] = sc
	}
	assert.True(t, byName["Cửa hàng A"].Covered)
	assert.Equal(t, int64(2), byName["Cửa hàng A"].ScheduleCount)
	assert.True(t, byName["Cửa hàng B"].Covered, "Lịch cancelled vẫn tính là covered")
	assert.False(t, byName["Cửa hàng C"].Covered)
	assert.Equal(t, int64(0), byName["Cửa hàng C"].ScheduleCount)
}

func TestComputeCoverage_KhongCoCuaHang(t *testing.T) {
	summary := ComputeCoverage(nil, nil, 1700000000000)

	assert.Equal(t, int64(0), summary.TotalStores)
	assert.Equal(t, int64(0), summary.CoveredStores)
	assert.Equal(t, int64(0), summary.UncoveredStores)
	assert.Empty(t, summary.Stores)
}

func TestComputeCoverage_LichChuaGanNguoi(t *testing.T) {
	store := models.Store{ID: primitive.NewObjectID(), Name: "Cửa hàng A"}
	schedules := []models.Schedule{
		{StoreID: store.ID}, // chưa gán tình nguyện viên
	}

	summary := ComputeCoverage([]models.Store{store}, schedules, 1700000000000)

	assert.Equal(t, int64(1), summary.CoveredStores, "Lịch chưa gán người vẫn tính covered cho cửa hàng")
	assert.Equal(t, int64(0), summary.ActiveVolunteers, "Lịch chưa gán người không đóng góp vào ActiveVolunteers")
}
