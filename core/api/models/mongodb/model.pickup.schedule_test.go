// Package models - Test trạng thái dẫn xuất và helper của lịch lấy hàng.
package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScheduleDerivedState(t *testing.T) {
	cases := []struct {
		name     string
		schedule Schedule
		expected ScheduleState
	}{
		{"Mới tạo", Schedule{Status: ScheduleStatusScheduled}, ScheduleStatePending},
		{"Đã sẵn sàng vẫn là pending", Schedule{Status: ScheduleStatusReady}, ScheduleStatePending},
		{"Đã lấy hàng vẫn là pending", Schedule{Status: ScheduleStatusReady, PickupConfirmed: true}, ScheduleStatePending},
		{"Status completed", Schedule{Status: ScheduleStatusCompleted}, ScheduleStateCompleted},
		{"Cờ deliveryConfirmed thắng status", Schedule{Status: ScheduleStatusReady, DeliveryConfirmed: true}, ScheduleStateCompleted},
		{"Đã hủy", Schedule{Status: ScheduleStatusCancelled}, ScheduleStateCancelled},
		{"Giao xong rồi mới hủy vẫn là completed", Schedule{Status: ScheduleStatusCancelled, DeliveryConfirmed: true}, ScheduleStateCompleted},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.schedule.DerivedState(); got != c.expected {
				t.Errorf("DerivedState phải là %q, got %q", c.expected, got)
			}
		})
	}
}

func TestScheduleHasVolunteer(t *testing.T) {
	volunteerID := primitive.NewObjectID()
	zeroID := primitive.NilObjectID

	if (&Schedule{}).HasVolunteer() {
		t.Error("lịch không có volunteerId phải trả false")
	}
	if (&Schedule{VolunteerID: &zeroID}).HasVolunteer() {
		t.Error("volunteerId zero phải coi như chưa gán")
	}
	if !(&Schedule{VolunteerID: &volunteerID}).HasVolunteer() {
		t.Error("lịch có volunteerId phải trả true")
	}
}
