// Package notification - Test quyết định đích gửi theo loại thông báo.
package notification

import (
	"testing"

	models "food_bridge/core/api/models/mongodb"
)

func TestFindTargets_ReadinessGuiChoTinhNguyenVien(t *testing.T) {
	targets := FindTargets(models.NotificationTypeReadinessConfirmed, "store@example.com", "volunteer@example.com", "")

	if len(targets) != 1 {
		t.Fatalf("phải có đúng 1 đích gửi, got %d: %v", len(targets), targets)
	}
	if targets[0].Channel != models.DeliveryChannelEmail {
		t.Errorf("kênh phải là email, got %q", targets[0].Channel)
	}
	if targets[0].Recipient != "volunteer@example.com" {
		t.Errorf("readiness_confirmed phải gửi cho tình nguyện viên, got %q", targets[0].Recipient)
	}
}

func TestFindTargets_PickupVaDeliveryGuiChoCuaHang(t *testing.T) {
	for _, notificationType := range []string{models.NotificationTypePickupConfirmed, models.NotificationTypeDeliveryConfirmed} {
		targets := FindTargets(notificationType, "store@example.com", "volunteer@example.com", "")

		if len(targets) != 1 {
			t.Fatalf("%s: phải có đúng 1 đích gửi, got %d", notificationType, len(targets))
		}
		if targets[0].Recipient != "store@example.com" {
			t.Errorf("%s phải gửi cho cửa hàng, got %q", notificationType, targets[0].Recipient)
		}
	}
}

func TestFindTargets_EmailRongThiBoQuaKenh(t *testing.T) {
	targets := FindTargets(models.NotificationTypeReadinessConfirmed, "store@example.com", "", "")

	if len(targets) != 0 {
		t.Errorf("tình nguyện viên không có email thì không có đích gửi nào, got %v", targets)
	}
}

func TestFindTargets_WebhookThemVaoMoiLoai(t *testing.T) {
	webhookURL := "https://hooks.example.com/foodbridge"

	for _, notificationType := range []string{
		models.NotificationTypeReadinessConfirmed,
		models.NotificationTypePickupConfirmed,
		models.NotificationTypeDeliveryConfirmed,
	} {
		targets := FindTargets(notificationType, "store@example.com", "volunteer@example.com", webhookURL)

		found := false
		for _, target := range targets {
			if target.Channel == models.DeliveryChannelWebhook && target.Recipient == webhookURL {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: phải có bản sao webhook khi URL được cấu hình, got %v", notificationType, targets)
		}
	}
}

func TestFindTargets_ChiWebhookKhiKhongCoEmail(t *testing.T) {
	webhookURL := "https://hooks.example.com/foodbridge"
	targets := FindTargets(models.NotificationTypePickupConfirmed, "", "", webhookURL)

	if len(targets) != 1 {
		t.Fatalf("phải có đúng 1 đích webhook, got %d", len(targets))
	}
	if targets[0].Channel != models.DeliveryChannelWebhook {
		t.Errorf("kênh phải là webhook, got %q", targets[0].Channel)
	}
}

func TestFindTargets_LoaiKhongBietChiCoWebhook(t *testing.T) {
	// Loại lạ không có quy tắc email, chỉ còn bản sao webhook nếu có
	targets := FindTargets("unknown_type", "store@example.com", "volunteer@example.com", "")
	if len(targets) != 0 {
		t.Errorf("loại không biết và không có webhook thì không có đích nào, got %v", targets)
	}
}
