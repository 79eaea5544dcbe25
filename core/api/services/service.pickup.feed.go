package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"
	"food_bridge/core/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedSnapshot là ảnh chụp feed lịch của một tác nhân tại một thời điểm.
type FeedSnapshot struct {
	Upcoming    []models.Schedule              `json:"upcoming"`    // Lịch sắp tới, tăng dần theo ngày
	History     []models.Schedule              `json:"history"`     // Toàn bộ lịch của tác nhân, giảm dần theo ngày
	StateCounts map[models.ScheduleState]int64 `json:"stateCounts"` // Đếm theo trạng thái dẫn xuất pending/completed/cancelled
	GeneratedAt int64                          `json:"generatedAt"` // Thời điểm tạo snapshot (ms)
}

// feedSortKey trả về khóa sắp xếp theo ngày của lịch. Lịch thiếu ngày
// nhận sentinel xa trong tương lai để đứng cuối khi sắp tăng dần thay vì
// làm hỏng phép so sánh.
func feedSortKey(s *models.Schedule) int64 {
	if s.PickupDate == 0 {
		return utility.FarFutureMilli
	}
	return s.PickupDate
}

// SplitFeed chia danh sách lịch thành view sắp tới và view lịch sử.
//
// Quy tắc:
//   - upcoming: ngày lấy hàng (so sánh theo ngày, bỏ phần giờ) là hôm nay
//     trở đi theo múi giờ loc; lịch thiếu ngày bị loại; sắp tăng dần
//   - history: toàn bộ danh sách, sắp giảm dần theo ngày; lịch thiếu ngày
//     (PickupDate 0) tự rơi xuống cuối
//   - stateCounts: đếm theo trạng thái dẫn xuất (pending/completed/cancelled)
//     trên toàn bộ danh sách
func SplitFeed(schedules []models.Schedule, now int64, loc *time.Location) *FeedSnapshot {
	todayStart := utility.StartOfDayMilli(now, loc)

	stateCounts := map[models.ScheduleState]int64{
		models.ScheduleStatePending:   0,
		models.ScheduleStateCompleted: 0,
		models.ScheduleStateCancelled: 0,
	}
	for i := range schedules {
		stateCounts[schedules[i].DerivedState()]++
	}

	upcoming := make([]models.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if s.PickupDate == 0 {
			continue
		}
		if utility.StartOfDayMilli(s.PickupDate, loc) >= todayStart {
			upcoming = append(upcoming, s)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return feedSortKey(&upcoming[i]) < feedSortKey(&upcoming[j])
	})

	history := make([]models.Schedule, len(schedules))
	copy(history, schedules)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].PickupDate > history[j].PickupDate
	})

	return &FeedSnapshot{
		Upcoming:    upcoming,
		History:     history,
		StateCounts: stateCounts,
		GeneratedAt: now,
	}
}

// FeedService dựng snapshot feed lịch cho từng tác nhân
type FeedService struct {
	scheduleService *ScheduleService
	loc             *time.Location
}

// NewFeedService tạo mới FeedService
func NewFeedService() (*FeedService, error) {
	scheduleService, err := NewScheduleService()
	if err != nil {
		return nil, err
	}

	tzName := ""
	if global.MongoDB_ServerConfig != nil {
		tzName = global.MongoDB_ServerConfig.ReportTimezone
	}

	return &FeedService{
		scheduleService: scheduleService,
		loc:             utility.LoadLocationOrUTC(tzName),
	}, nil
}

// snapshot tải lịch theo filter rồi chia thành hai view
func (s *FeedService) snapshot(ctx context.Context, filter interface{}) (*FeedSnapshot, error) {
	schedules, err := s.scheduleService.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	return SplitFeed(schedules, utility.CurrentTimeInMilli(), s.loc), nil
}

// SnapshotForStore dựng feed cho một cửa hàng: các lịch có storeId trùng.
func (s *FeedService) SnapshotForStore(ctx context.Context, storeID primitive.ObjectID) (*FeedSnapshot, error) {
	return s.snapshot(ctx, bson.M{"storeId": storeID})
}

// SnapshotForVolunteer dựng feed cho một tình nguyện viên: các lịch được phân công.
func (s *FeedService) SnapshotForVolunteer(ctx context.Context, volunteerID primitive.ObjectID) (*FeedSnapshot, error) {
	return s.snapshot(ctx, bson.M{"volunteerId": volunteerID})
}

// SnapshotAll dựng feed trên toàn bộ lịch, dành cho staff.
func (s *FeedService) SnapshotAll(ctx context.Context) (*FeedSnapshot, error) {
	return s.snapshot(ctx, nil)
}

// SnapshotForActor dựng feed theo vai trò của tác nhân trong context:
// store xem lịch của cửa hàng mình, volunteer xem lịch mình được phân công,
// staff xem toàn bộ.
func (s *FeedService) SnapshotForActor(ctx context.Context) (*FeedSnapshot, error) {
	role, _ := GetRoleFromContext(ctx)
	switch role {
	case models.RoleStaff:
		return s.SnapshotAll(ctx)
	case models.RoleStore:
		actorID, ok := GetActorIDFromContext(ctx)
		if !ok {
			return nil, common.ErrAccountNotFound
		}
		return s.SnapshotForStore(ctx, actorID)
	case models.RoleVolunteer:
		actorID, ok := GetActorIDFromContext(ctx)
		if !ok {
			return nil, common.ErrAccountNotFound
		}
		return s.SnapshotForVolunteer(ctx, actorID)
	default:
		return nil, common.NewError(
			common.ErrCodeAuthRole,
			fmt.Sprintf("Vai trò '%s' không có feed lịch", role),
			common.StatusForbidden,
			nil,
		)
	}
}
