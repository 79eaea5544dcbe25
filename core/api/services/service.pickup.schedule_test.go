// Package services - Test các hàm quyết định chuyển trạng thái của lịch lấy hàng.
package services

import (
	"context"
	"testing"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildReadinessUpdate_TuScheduled(t *testing.T) {
	schedule := &models.Schedule{Status: models.ScheduleStatusScheduled}
	now := int64(1700000000000)

	update, err := buildReadinessUpdate(schedule, now)
	if err != nil {
		t.Fatalf("buildReadinessUpdate từ scheduled phải thành công, got err: %v", err)
	}
	if update.Set["status"] != models.ScheduleStatusReady {
		t.Errorf("status phải chuyển sang ready, got: %v", update.Set["status"])
	}
	if update.Set["readyConfirmedAt"] != now {
		t.Errorf("readyConfirmedAt phải là %d, got: %v", now, update.Set["readyConfirmedAt"])
	}
}

func TestBuildReadinessUpdate_DaReady_TuChoi(t *testing.T) {
	schedule := &models.Schedule{Status: models.ScheduleStatusReady}

	update, err := buildReadinessUpdate(schedule, 1700000000000)
	if err != common.ErrAlreadyReady {
		t.Fatalf("xác nhận lại khi đã ready phải trả ErrAlreadyReady, got: %v", err)
	}
	if update != nil {
		t.Error("bị từ chối thì không được trả update nào")
	}
}

func TestBuildReadinessUpdate_CacTrangThaiKhacDeuNhan(t *testing.T) {
	// Chỉ ready bị chặn; completed hay cancelled vẫn nhận xác nhận sẵn sàng
	for _, status := range []string{models.ScheduleStatusCompleted, models.ScheduleStatusCancelled} {
		schedule := &models.Schedule{Status: status}
		if _, err := buildReadinessUpdate(schedule, 1700000000000); err != nil {
			t.Errorf("trạng thái %s phải nhận xác nhận sẵn sàng, got err: %v", status, err)
		}
	}
}

func TestBuildPickupUpdate_KhongCoPrecondition(t *testing.T) {
	// Xác nhận lấy hàng không kiểm tra trạng thái, kể cả khi lịch chưa ready
	schedule := &models.Schedule{Status: models.ScheduleStatusScheduled}
	now := int64(1700000000000)

	update, err := buildPickupUpdate(schedule, now)
	if err != nil {
		t.Fatalf("buildPickupUpdate không được trả lỗi, got: %v", err)
	}
	if update.Set["pickupConfirmed"] != true {
		t.Error("pickupConfirmed phải được bật")
	}
	if update.Set["pickupConfirmedAt"] != now {
		t.Errorf("pickupConfirmedAt phải là %d, got: %v", now, update.Set["pickupConfirmedAt"])
	}
	if _, ok := update.Set["status"]; ok {
		t.Error("xác nhận lấy hàng không được đổi status của lịch")
	}
}

func TestBuildPickupUpdate_XacNhanLaiGhiDeTimestamp(t *testing.T) {
	schedule := &models.Schedule{
		Status:            models.ScheduleStatusReady,
		PickupConfirmed:   true,
		PickupConfirmedAt: 1600000000000,
	}
	now := int64(1700000000000)

	update, err := buildPickupUpdate(schedule, now)
	if err != nil {
		t.Fatalf("xác nhận lại không được trả lỗi, got: %v", err)
	}
	if update.Set["pickupConfirmedAt"] != now {
		t.Errorf("xác nhận lại phải ghi đè timestamp mới %d, got: %v", now, update.Set["pickupConfirmedAt"])
	}
}

func TestBuildDeliveryUpdate_ChuaLayHang_TuChoi(t *testing.T) {
	schedule := &models.Schedule{Status: models.ScheduleStatusReady, PickupConfirmed: false}

	update, err := buildDeliveryUpdate(schedule, 1700000000000)
	if err != common.ErrPickupNotConfirmed {
		t.Fatalf("chưa xác nhận lấy hàng phải trả ErrPickupNotConfirmed, got: %v", err)
	}
	if update != nil {
		t.Error("bị từ chối thì không được trả update nào")
	}
}

func TestBuildDeliveryUpdate_DaLayHang_HoanTat(t *testing.T) {
	schedule := &models.Schedule{Status: models.ScheduleStatusReady, PickupConfirmed: true}
	now := int64(1700000000000)

	update, err := buildDeliveryUpdate(schedule, now)
	if err != nil {
		t.Fatalf("buildDeliveryUpdate sau khi lấy hàng phải thành công, got err: %v", err)
	}
	if update.Set["deliveryConfirmed"] != true {
		t.Error("deliveryConfirmed phải được bật")
	}
	if update.Set["deliveryConfirmedAt"] != now {
		t.Errorf("deliveryConfirmedAt phải là %d, got: %v", now, update.Set["deliveryConfirmedAt"])
	}
	if update.Set["status"] != models.ScheduleStatusCompleted {
		t.Errorf("status phải chuyển sang completed, got: %v", update.Set["status"])
	}
}

func TestBuildDeliveryUpdate_TuChoiKhongDongDauVet(t *testing.T) {
	// Lỗi precondition không được kèm theo bất kỳ thay đổi nào
	schedule := &models.Schedule{Status: models.ScheduleStatusScheduled}

	update, err := buildDeliveryUpdate(schedule, 1700000000000)
	if err == nil {
		t.Fatal("phải trả lỗi khi chưa xác nhận lấy hàng")
	}
	if update != nil {
		t.Errorf("update phải là nil khi bị từ chối, got: %v", update)
	}

	cErr, ok := err.(*common.Error)
	if !ok {
		t.Fatalf("lỗi phải là *common.Error, got: %T", err)
	}
	if cErr.StatusCode != common.StatusConflict {
		t.Errorf("lỗi precondition phải trả 409, got: %d", cErr.StatusCode)
	}
}

func TestRequireAssignedVolunteer(t *testing.T) {
	volunteerID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	t.Run("Lịch chưa gán người", func(t *testing.T) {
		schedule := &models.Schedule{}
		ctx := SetActorIDToContext(context.Background(), volunteerID)
		if err := requireAssignedVolunteer(ctx, schedule); err != common.ErrScheduleNoVolunteer {
			t.Errorf("lịch chưa gán người phải trả ErrScheduleNoVolunteer, got: %v", err)
		}
	})

	t.Run("Actor không trùng người được phân công", func(t *testing.T) {
		schedule := &models.Schedule{VolunteerID: &volunteerID}
		ctx := SetActorIDToContext(context.Background(), otherID)
		if err := requireAssignedVolunteer(ctx, schedule); err != common.ErrNotScheduleOwner {
			t.Errorf("actor khác phải trả ErrNotScheduleOwner, got: %v", err)
		}
	})

	t.Run("Context không có actor", func(t *testing.T) {
		schedule := &models.Schedule{VolunteerID: &volunteerID}
		if err := requireAssignedVolunteer(context.Background(), schedule); err != common.ErrNotScheduleOwner {
			t.Errorf("context thiếu actor phải trả ErrNotScheduleOwner, got: %v", err)
		}
	})

	t.Run("Đúng người được phân công", func(t *testing.T) {
		schedule := &models.Schedule{VolunteerID: &volunteerID}
		ctx := SetActorIDToContext(context.Background(), volunteerID)
		if err := requireAssignedVolunteer(ctx, schedule); err != nil {
			t.Errorf("đúng người phải qua, got err: %v", err)
		}
	})
}
