// Package models - Test thứ tự ưu tiên tên hiển thị của tình nguyện viên.
package models

import (
	"testing"
)

func TestVolunteerDisplayName(t *testing.T) {
	v := &Volunteer{Name: "An", FullName: "Nguyễn Văn An", Display: "an.nguyen"}
	if got := v.DisplayName(); got != "An" {
		t.Errorf("name phải thắng các field cũ, got %q", got)
	}

	v = &Volunteer{FullName: "Nguyễn Văn An", Display: "an.nguyen"}
	if got := v.DisplayName(); got != "Nguyễn Văn An" {
		t.Errorf("thiếu name thì lấy fullName, got %q", got)
	}

	v = &Volunteer{Display: "an.nguyen"}
	if got := v.DisplayName(); got != "an.nguyen" {
		t.Errorf("chỉ còn displayName thì lấy nó, got %q", got)
	}

	v = &Volunteer{}
	if got := v.DisplayName(); got != "" {
		t.Errorf("hồ sơ không có tên nào phải trả chuỗi rỗng, got %q", got)
	}
}
