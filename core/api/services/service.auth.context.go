package services

import (
	"context"

	models "food_bridge/core/api/models/mongodb"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context key type để tránh conflict
type contextKey string

const (
	accountIDContextKey contextKey = "account_id"
	actorIDContextKey   contextKey = "actor_id"
	roleContextKey      contextKey = "role"
)

// SetAccountIDToContext lưu ID tài khoản đang đăng nhập vào context
func SetAccountIDToContext(ctx context.Context, accountID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, accountIDContextKey, accountID)
}

// GetAccountIDFromContext lấy ID tài khoản đang đăng nhập từ context
func GetAccountIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	accountID, ok := ctx.Value(accountIDContextKey).(primitive.ObjectID)
	return accountID, ok
}

// SetActorIDToContext lưu ID hồ sơ tác nhân (cửa hàng hoặc tình nguyện viên) vào context.
// Tài khoản staff không có actorID.
func SetActorIDToContext(ctx context.Context, actorID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, actorIDContextKey, actorID)
}

// GetActorIDFromContext lấy ID hồ sơ tác nhân từ context
func GetActorIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	actorID, ok := ctx.Value(actorIDContextKey).(primitive.ObjectID)
	return actorID, ok
}

// SetRoleToContext lưu vai trò của tài khoản đang đăng nhập vào context
func SetRoleToContext(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleContextKey, role)
}

// GetRoleFromContext lấy vai trò của tài khoản đang đăng nhập từ context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleContextKey).(string)
	return role, ok
}

// IsStaffFromContext kiểm tra request trong context có thuộc tài khoản staff không.
// Không có role trong context thì coi như không phải staff.
func IsStaffFromContext(ctx context.Context) bool {
	role, ok := GetRoleFromContext(ctx)
	return ok && role == models.RoleStaff
}
