// Package services chứa các service xử lý logic nghiệp vụ của ứng dụng
package services

import (
	"context"
	"fmt"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/global"
	"food_bridge/core/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitService seed dữ liệu tối thiểu lúc khởi động.
// Hệ thống không có flow đăng ký tự phục vụ nên phải có sẵn ít nhất một
// tài khoản staff để cấp phát các tài khoản còn lại.
type InitService struct {
	accountService *AccountService
}

// NewInitService tạo mới một đối tượng InitService
func NewInitService() (*InitService, error) {
	accountService, err := NewAccountService()
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %v", err)
	}

	return &InitService{
		accountService: accountService,
	}, nil
}

// HasAnyStaff kiểm tra đã có tài khoản staff nào trong hệ thống chưa
func (s *InitService) HasAnyStaff(ctx context.Context) (bool, error) {
	count, err := s.accountService.CountDocuments(ctx, bson.M{"role": models.RoleStaff})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureStaffAccount seed tài khoản staff đầu tiên khi hệ thống chưa có staff nào.
// Tài khoản được đánh dấu IsSystem để không xóa được qua API.
// Token lấy từ cấu hình INIT_STAFF_TOKEN; nếu bỏ trống thì phát hành JWT
// và log ra đúng một lần để vận hành viên thu lại (nên rotate ngay sau đó).
func (s *InitService) EnsureStaffAccount(ctx context.Context) (*models.Account, error) {
	log := logger.GetAppLogger()

	hasStaff, err := s.HasAnyStaff(ctx)
	if err != nil {
		return nil, err
	}
	if hasStaff {
		return nil, nil
	}

	cfg := global.MongoDB_ServerConfig

	account := models.Account{
		Email:    cfg.InitStaffEmail,
		Name:     cfg.InitStaffName,
		Role:     models.RoleStaff,
		IsSystem: true,
	}

	// Insert có IsSystem=true phải đi qua context được cấp phép
	seedCtx := WithSystemDataInsertAllowed(ctx)
	created, err := s.accountService.InsertOne(seedCtx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to seed staff account: %v", err)
	}

	if cfg.InitStaffToken != "" {
		updated, err := s.accountService.UpdateById(seedCtx, created.ID, &UpdateData{
			Set: map[string]interface{}{
				"token": cfg.InitStaffToken,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set configured staff token: %v", err)
		}

		log.WithFields(map[string]interface{}{
			"account_id": updated.ID.Hex(),
			"email":      updated.Email,
		}).Info("Đã seed tài khoản staff khởi tạo với token từ cấu hình")
		return &updated, nil
	}

	withToken, err := s.accountService.IssueToken(seedCtx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token for seeded staff account: %v", err)
	}

	// Token chỉ xuất hiện ở log đúng một lần này
	log.WithFields(map[string]interface{}{
		"account_id": withToken.ID.Hex(),
		"email":      withToken.Email,
		"token":      withToken.Token,
	}).Warn("Đã seed tài khoản staff khởi tạo, token in ra một lần duy nhất, hãy rotate sau khi thu lại")

	return withToken, nil
}
