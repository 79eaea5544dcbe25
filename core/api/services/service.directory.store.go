package services

import (
	"context"
	"fmt"

	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreService là service quản lý hồ sơ cửa hàng quyên góp
type StoreService struct {
	*BaseServiceMongoImpl[models.Store]
}

// NewStoreService tạo mới StoreService
func NewStoreService() (*StoreService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Stores)
	if !exist {
		return nil, fmt.Errorf("failed to get stores collection: %v", common.ErrNotFound)
	}

	return &StoreService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Store](collection),
	}, nil
}

// Approve bật cờ duyệt cho cửa hàng (chỉ staff gọi, chặn ở router).
// Gọi lại trên cửa hàng đã duyệt không gây lỗi, chỉ làm mới updatedAt.
func (s *StoreService) Approve(ctx context.Context, storeID primitive.ObjectID) (models.Store, error) {
	update := &UpdateData{
		Set: map[string]interface{}{
			"isApproved": true,
		},
	}

	store, err := s.UpdateById(ctx, storeID, update)
	if err != nil {
		return store, err
	}

	logrus.WithFields(logrus.Fields{
		"storeId": storeID.Hex(),
		"name":    store.Name,
	}).Info("Đã duyệt cửa hàng tham gia quyên góp")

	return store, nil
}

// AddUnavailableDate thêm một ngày nghỉ "YYYY-MM-DD" vào hồ sơ cửa hàng.
// Dùng $addToSet nên thêm trùng ngày không tạo phần tử lặp.
func (s *StoreService) AddUnavailableDate(ctx context.Context, storeID primitive.ObjectID, date string) (models.Store, error) {
	update := &UpdateData{
		AddToSet: map[string]interface{}{
			"unavailableDates": date,
		},
	}
	return s.UpdateById(ctx, storeID, update)
}

// RemoveUnavailableDate gỡ một ngày nghỉ khỏi hồ sơ cửa hàng.
func (s *StoreService) RemoveUnavailableDate(ctx context.Context, storeID primitive.ObjectID, date string) (models.Store, error) {
	update := &UpdateData{
		Pull: map[string]interface{}{
			"unavailableDates": date,
		},
	}
	return s.UpdateById(ctx, storeID, update)
}

// DeleteById override để kiểm tra quan hệ trước khi xóa cửa hàng.
// Cửa hàng còn lịch lấy hàng, bản ghi quyên góp hoặc tài khoản tham chiếu thì không xóa được.
func (s *StoreService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := ValidateBeforeDeleteStore(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
