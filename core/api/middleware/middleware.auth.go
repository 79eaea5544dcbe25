package middleware

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"food_bridge/core/api/services"
	"food_bridge/core/common"
	"food_bridge/core/logger"
)

// AuthManager giữ service tra cứu tài khoản cho middleware xác thực
type AuthManager struct {
	AccountCRUD *services.AccountService
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	accountService, err := services.NewAccountService()
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %v", err)
	}

	return &AuthManager{
		AccountCRUD: accountService,
	}, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
//
// Tra tài khoản theo bearer token trong header Authorization, chặn tài khoản
// bị khóa, rồi lưu account_id/actor_id/role vào Locals cho handler phía sau.
// requiredRole là vai trò bắt buộc của route ("staff", "store", "volunteer");
// chuỗi rỗng nghĩa là chỉ cần đăng nhập, vai trò nào cũng qua.
//
// Tra token đi thẳng vào database mỗi request, KHÔNG cache: rotate-token
// phải vô hiệu token cũ ngay lập tức, cache theo token sẽ giữ token cũ
// sống thêm hết TTL.
func AuthMiddleware(requiredRole string) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Thiếu header Authorization")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		account, err := authManager.AccountCRUD.FindByToken(c.Context(), parts[1])
		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token không khớp tài khoản nào")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra tài khoản có bị khóa không
		if account.IsBlock {
			HandleErrorResponse(c, common.ErrAccountBlocked)
			return nil
		}

		// Lưu thông tin tài khoản vào context
		c.Locals("account_id", account.ID.Hex())
		c.Locals("role", account.Role)
		if account.ActorID != nil {
			c.Locals("actor_id", account.ActorID.Hex())
		}

		// Không yêu cầu vai trò cụ thể thì cho qua ngay (chỉ cần xác thực)
		if requiredRole == "" {
			return c.Next()
		}

		if account.Role != requiredRole {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"account_id":    account.ID.Hex(),
				"role":          account.Role,
				"required_role": requiredRole,
				"path":          c.Path(),
			}).Warn("❌ [AUTH] Vai trò không được phép truy cập route này")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				fmt.Sprintf("Route này yêu cầu vai trò '%s'", requiredRole),
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		return c.Next()
	}
}
