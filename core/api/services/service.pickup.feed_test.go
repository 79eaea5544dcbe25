// Package services - Test chia feed lịch thành view sắp tới và view lịch sử.
package services

import (
	"testing"
	"time"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/utility"
)

func TestSplitFeed(t *testing.T) {
	loc := time.UTC
	// "Bây giờ" là 15/03/2025 18:00 UTC
	now := time.Date(2025, 3, 15, 18, 0, 0, 0, loc).UnixMilli()

	todayMorning := time.Date(2025, 3, 15, 8, 0, 0, 0, loc).UnixMilli()
	yesterday := time.Date(2025, 3, 14, 8, 0, 0, 0, loc).UnixMilli()
	tomorrow := time.Date(2025, 3, 16, 8, 0, 0, 0, loc).UnixMilli()
	nextWeek := time.Date(2025, 3, 22, 8, 0, 0, 0, loc).UnixMilli()

	schedules := []models.Schedule{
		{StoreName: "Tuần sau", PickupDate: nextWeek},
		{StoreName: "Hôm qua", PickupDate: yesterday, DeliveryConfirmed: true, Status: models.ScheduleStatusCompleted},
		{StoreName: "Sáng nay", PickupDate: todayMorning},
		{StoreName: "Chưa có ngày", PickupDate: 0, Status: models.ScheduleStatusCancelled},
		{StoreName: "Ngày mai", PickupDate: tomorrow},
	}

	snapshot := SplitFeed(schedules, now, loc)

	// Upcoming: hôm nay trở đi theo phần ngày (sáng nay đã qua giờ vẫn tính),
	// lịch thiếu ngày bị loại, sắp tăng dần
	if len(snapshot.Upcoming) != 3 {
		t.Fatalf("upcoming phải có 3 lịch, got %d", len(snapshot.Upcoming))
	}
	upcomingNames := []string{snapshot.Upcoming[0].StoreName, snapshot.Upcoming[1].StoreName, snapshot.Upcoming[2].StoreName}
	expected := []string{"Sáng nay", "Ngày mai", "Tuần sau"}
	for i := range expected {
		if upcomingNames[i] != expected[i] {
			t.Errorf("upcoming[%d] phải là %q, got %q (toàn bộ: %v)", i, expected[i], upcomingNames[i], upcomingNames)
		}
	}

	// History: toàn bộ danh sách, giảm dần theo ngày, lịch thiếu ngày rơi xuống cuối
	if len(snapshot.History) != len(schedules) {
		t.Fatalf("history phải chứa toàn bộ %d lịch, got %d", len(schedules), len(snapshot.History))
	}
	if snapshot.History[0].StoreName != "Tuần sau" {
		t.Errorf("history[0] phải là lịch mới nhất, got %q", snapshot.History[0].StoreName)
	}
	if snapshot.History[len(snapshot.History)-1].StoreName != "Chưa có ngày" {
		t.Errorf("lịch thiếu ngày phải đứng cuối history, got %q", snapshot.History[len(snapshot.History)-1].StoreName)
	}

	// StateCounts đếm theo trạng thái dẫn xuất trên toàn bộ danh sách
	if snapshot.StateCounts[models.ScheduleStatePending] != 3 {
		t.Errorf("phải có 3 lịch pending, got %d", snapshot.StateCounts[models.ScheduleStatePending])
	}
	if snapshot.StateCounts[models.ScheduleStateCompleted] != 1 {
		t.Errorf("phải có 1 lịch completed, got %d", snapshot.StateCounts[models.ScheduleStateCompleted])
	}
	if snapshot.StateCounts[models.ScheduleStateCancelled] != 1 {
		t.Errorf("phải có 1 lịch cancelled, got %d", snapshot.StateCounts[models.ScheduleStateCancelled])
	}

	if snapshot.GeneratedAt != now {
		t.Errorf("GeneratedAt phải là %d, got %d", now, snapshot.GeneratedAt)
	}
}

func TestSplitFeed_SoSanhTheoNgayBoPhanGio(t *testing.T) {
	loc := time.UTC
	// 23:59 hôm nay: lịch lúc 00:01 cùng ngày vẫn là "sắp tới"
	now := time.Date(2025, 3, 15, 23, 59, 0, 0, loc).UnixMilli()
	earlyToday := time.Date(2025, 3, 15, 0, 1, 0, 0, loc).UnixMilli()

	snapshot := SplitFeed([]models.Schedule{{PickupDate: earlyToday}}, now, loc)

	if len(snapshot.Upcoming) != 1 {
		t.Errorf("lịch cùng ngày phải nằm trong upcoming bất kể giờ, got %d lịch", len(snapshot.Upcoming))
	}
}

func TestSplitFeed_DanhSachRong(t *testing.T) {
	snapshot := SplitFeed(nil, 1700000000000, time.UTC)

	if len(snapshot.Upcoming) != 0 || len(snapshot.History) != 0 {
		t.Error("danh sách rỗng phải trả hai view rỗng")
	}
}

func TestFeedSortKey_SentinelChoNgayThieu(t *testing.T) {
	withDate := &models.Schedule{PickupDate: 1700000000000}
	noDate := &models.Schedule{PickupDate: 0}

	if feedSortKey(noDate) != utility.FarFutureMilli {
		t.Errorf("lịch thiếu ngày phải nhận sentinel %d, got %d", utility.FarFutureMilli, feedSortKey(noDate))
	}
	if feedSortKey(withDate) >= feedSortKey(noDate) {
		t.Error("sentinel phải lớn hơn mọi ngày thật để lịch thiếu ngày đứng cuối khi sắp tăng dần")
	}
}
