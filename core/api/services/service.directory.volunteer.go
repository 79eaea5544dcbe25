package services

import (
	"context"
	"fmt"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VolunteerService là service quản lý hồ sơ tình nguyện viên
type VolunteerService struct {
	*BaseServiceMongoImpl[models.Volunteer]
}

// NewVolunteerService tạo mới VolunteerService
func NewVolunteerService() (*VolunteerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Volunteers)
	if !exist {
		return nil, fmt.Errorf("failed to get volunteers collection: %v", common.ErrNotFound)
	}

	return &VolunteerService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Volunteer](collection),
	}, nil
}

// DeleteById override để kiểm tra quan hệ trước khi xóa tình nguyện viên.
// Tình nguyện viên còn lịch phân công, bản ghi quyên góp hoặc tài khoản tham chiếu thì không xóa được.
func (s *VolunteerService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := ValidateBeforeDeleteVolunteer(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
