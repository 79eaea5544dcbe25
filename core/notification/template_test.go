// Package notification - Test tra và render template thông báo.
package notification

import (
	"strings"
	"testing"

	models "food_bridge/core/api/models/mongodb"
)

func TestFindTemplate_DuBaLoai(t *testing.T) {
	for _, notificationType := range []string{
		models.NotificationTypeReadinessConfirmed,
		models.NotificationTypePickupConfirmed,
		models.NotificationTypeDeliveryConfirmed,
	} {
		template, err := FindTemplate(notificationType)
		if err != nil {
			t.Errorf("loại %s phải có template, got err: %v", notificationType, err)
			continue
		}
		if template.Subject == "" || template.Content == "" {
			t.Errorf("template %s phải có subject và content", notificationType)
		}
	}
}

func TestFindTemplate_LoaiKhongBiet(t *testing.T) {
	_, err := FindTemplate("unknown_type")
	if err == nil {
		t.Fatal("loại không biết phải trả lỗi")
	}
	if !strings.Contains(err.Error(), "unknown_type") {
		t.Errorf("thông báo lỗi phải nêu loại bị thiếu, got: %v", err)
	}
}

func TestRenderTemplate_ThayPlaceholder(t *testing.T) {
	template, err := FindTemplate(models.NotificationTypePickupConfirmed)
	if err != nil {
		t.Fatalf("FindTemplate lỗi: %v", err)
	}

	payload := map[string]interface{}{
		"volunteerName": "Nguyễn Văn An",
		"storeName":     "Tiệm Bánh Hạnh Phúc",
		"pickupDate":    "15/03/2025",
	}

	subject, content := RenderTemplate(template, payload)

	if !strings.Contains(subject, "Tiệm Bánh Hạnh Phúc") {
		t.Errorf("subject phải chứa tên cửa hàng, got: %q", subject)
	}
	if !strings.Contains(content, "Nguyễn Văn An") {
		t.Errorf("content phải chứa tên tình nguyện viên, got: %q", content)
	}
	if !strings.Contains(content, "15/03/2025") {
		t.Errorf("content phải chứa ngày lấy hàng, got: %q", content)
	}
	if strings.Contains(subject, "{{") || strings.Contains(content, "{{") {
		t.Errorf("không được sót placeholder nào: subject=%q content=%q", subject, content)
	}
}

func TestRenderTemplate_BienThieuThayBangRong(t *testing.T) {
	template := &MessageTemplate{
		Subject:   "Hàng tại {{storeName}}",
		Content:   "Lịch ngày {{pickupDate}} của {{storeName}}",
		Variables: []string{"storeName", "pickupDate"},
	}

	subject, content := RenderTemplate(template, map[string]interface{}{
		"storeName": "Cửa hàng A",
		// pickupDate không có trong payload
	})

	if subject != "Hàng tại Cửa hàng A" {
		t.Errorf("subject render sai, got: %q", subject)
	}
	if content != "Lịch ngày  của Cửa hàng A" {
		t.Errorf("biến thiếu phải thay bằng chuỗi rỗng, got: %q", content)
	}
}

func TestRenderTemplate_GiaTriKhongPhaiChuoi(t *testing.T) {
	template := &MessageTemplate{
		Subject:   "Lịch ngày {{pickupDate}}",
		Content:   "{{pickupDate}}",
		Variables: []string{"pickupDate"},
	}

	subject, _ := RenderTemplate(template, map[string]interface{}{
		"pickupDate": int64(1742025600000),
	})

	if !strings.Contains(subject, "1742025600000") {
		t.Errorf("giá trị số phải được format qua %%v, got: %q", subject)
	}
}
