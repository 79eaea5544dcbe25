package main

import (
	"context"

	"food_bridge/core/api/services"
	"food_bridge/core/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := services.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	// Seed tài khoản staff đầu tiên nếu chưa có staff nào.
	// Không có staff thì không cấp phát được tài khoản store/volunteer nào khác.
	account, err := initService.EnsureStaffAccount(context.Background())
	if err != nil {
		log.Fatalf("Failed to ensure staff account: %v", err)
	}
	if account != nil {
		log.Infof("✅ [INIT] Seeded initial staff account: %s", account.Email)
	} else {
		log.Info("✅ [INIT] Staff account already present, skipping seed")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
