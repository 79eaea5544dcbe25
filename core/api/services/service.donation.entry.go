package services

import (
	"context"
	"fmt"

	"food_bridge/core/api/dto"
	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"
	"food_bridge/core/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ====================================
// CÁC HÀM THUẦN TRÊN DÒNG HÀNG
// ====================================

// ValidateDonationItems kiểm tra danh sách dòng hàng trước khi ghi.
// Mỗi dòng phải có loại thực phẩm và ít nhất một trong hai: số thùng > 0
// hoặc số kg > 0. Lỗi chỉ rõ dòng vi phạm (đánh số từ 1) để người nhập sửa được ngay.
func ValidateDonationItems(items []models.DonationItem) error {
	if len(items) == 0 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Bản ghi quyên góp phải có ít nhất một dòng hàng",
			common.StatusBadRequest,
			nil,
		)
	}

	for i, item := range items {
		row := i + 1
		if item.FoodType == "" {
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dòng hàng %d thiếu loại thực phẩm", row),
				common.StatusBadRequest,
				nil,
			)
		}
		if item.Boxes <= 0 && item.KgValue() <= 0 {
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dòng hàng %d (%s) phải có số thùng hoặc số kg lớn hơn 0", row, item.FoodType),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	return nil
}

// RecomputeTotals tính lại tổng số thùng và tổng kg từ danh sách dòng hàng.
// Kg dạng chuỗi số được đọc qua KgValue, giá trị không đọc được tính 0.
// Gọi lại mỗi lần items thay đổi, totals không bao giờ tự đứng một mình.
func RecomputeTotals(items []models.DonationItem) (int, float64) {
	totalBoxes := 0
	totalKg := 0.0
	for _, item := range items {
		totalBoxes += item.Boxes
		totalKg += item.KgValue()
	}
	return totalBoxes, totalKg
}

// donationItemsFromInput chuyển dòng hàng từ tầng transport sang model
func donationItemsFromInput(inputs []dto.DonationItemInput) []models.DonationItem {
	items := make([]models.DonationItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, models.DonationItem{
			FoodType: in.FoodType,
			Boxes:    in.Boxes,
			Kg:       in.Kg,
		})
	}
	return items
}

// ====================================
// SERVICE
// ====================================

// DonationService là service quản lý bản ghi quyên góp
type DonationService struct {
	*BaseServiceMongoImpl[models.Donation]
	volunteerService *VolunteerService
	storeService     *StoreService
}

// NewDonationService tạo mới DonationService
func NewDonationService() (*DonationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Donations)
	if !exist {
		return nil, fmt.Errorf("failed to get donations collection: %v", common.ErrNotFound)
	}

	volunteerService, err := NewVolunteerService()
	if err != nil {
		return nil, err
	}

	storeService, err := NewStoreService()
	if err != nil {
		return nil, err
	}

	return &DonationService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Donation](collection),
		volunteerService:     volunteerService,
		storeService:         storeService,
	}, nil
}

// buildDonation dựng model quyên góp từ input đã validate:
// chuyển items, tính totals, denormalize tên cửa hàng, set ngày mặc định.
func (s *DonationService) buildDonation(ctx context.Context, input *dto.DonationCreateInput) (models.Donation, error) {
	var zero models.Donation

	items := donationItemsFromInput(input.Items)
	if err := ValidateDonationItems(items); err != nil {
		return zero, err
	}
	totalBoxes, totalKg := RecomputeTotals(items)

	donation := models.Donation{
		Items:      items,
		TotalBoxes: totalBoxes,
		TotalKg:    totalKg,
		Notes:      input.Notes,
		StoreName:  input.StoreName,
	}

	if input.Date != nil {
		donation.Date = *input.Date
	} else {
		donation.Date = utility.CurrentTimeInMilli()
	}

	if input.StoreID != "" {
		storeID := utility.String2ObjectID(input.StoreID)
		store, err := s.storeService.FindOneById(ctx, storeID)
		if err != nil {
			return zero, err
		}
		donation.StoreID = &storeID
		donation.StoreName = store.Name
	}

	return donation, nil
}

// CreateFromVolunteer ghi nhận quyên góp do tình nguyện viên tự báo sau khi giao.
//
// Business logic:
//   - VolunteerID lấy từ actor trong context, bỏ qua giá trị client gửi:
//     tình nguyện viên chỉ ghi được bản ghi của chính mình
//   - Status để trống cho default "pending", chờ staff duyệt
func (s *DonationService) CreateFromVolunteer(ctx context.Context, input *dto.DonationCreateInput) (models.Donation, error) {
	var zero models.Donation

	actorID, ok := GetActorIDFromContext(ctx)
	if !ok {
		return zero, common.ErrAccountNotFound
	}

	volunteer, err := s.volunteerService.FindOneById(ctx, actorID)
	if err != nil {
		return zero, err
	}

	donation, err := s.buildDonation(ctx, input)
	if err != nil {
		return zero, err
	}
	donation.VolunteerID = &actorID
	donation.VolunteerName = volunteer.DisplayName()

	created, err := s.InsertOne(ctx, donation)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"donationId":  created.ID.Hex(),
		"volunteerId": actorID.Hex(),
		"totalKg":     created.TotalKg,
	}).Info("Tình nguyện viên đã ghi nhận quyên góp")

	return created, nil
}

// CreateManual staff nhập tay bản ghi quyên góp (dữ liệu giấy, dữ liệu cũ).
//
// Business logic:
//   - CreatedManually = true và status = completed ngay, không qua bước duyệt
//   - VolunteerID tùy chọn; có thì denormalize tên từ hồ sơ
func (s *DonationService) CreateManual(ctx context.Context, input *dto.DonationCreateInput) (models.Donation, error) {
	var zero models.Donation

	donation, err := s.buildDonation(ctx, input)
	if err != nil {
		return zero, err
	}

	if input.VolunteerID != "" {
		volunteerID := utility.String2ObjectID(input.VolunteerID)
		volunteer, err := s.volunteerService.FindOneById(ctx, volunteerID)
		if err != nil {
			return zero, err
		}
		donation.VolunteerID = &volunteerID
		donation.VolunteerName = volunteer.DisplayName()
	}

	donation.Status = models.DonationStatusCompleted
	donation.CreatedManually = true

	created, err := s.InsertOne(ctx, donation)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"donationId": created.ID.Hex(),
		"totalKg":    created.TotalKg,
	}).Info("Staff đã nhập tay bản ghi quyên góp")

	return created, nil
}

// Edit staff sửa bản ghi quyên góp. Items thay đổi thì validate lại
// từng dòng và tính lại totals; client không bao giờ gửi totals trực tiếp.
func (s *DonationService) Edit(ctx context.Context, donationID primitive.ObjectID, input *dto.DonationUpdateInput) (models.Donation, error) {
	var zero models.Donation

	existing, err := s.FindOneById(ctx, donationID)
	if err != nil {
		return zero, err
	}

	set := map[string]interface{}{}

	if len(input.Items) > 0 {
		items := donationItemsFromInput(input.Items)
		if err := ValidateDonationItems(items); err != nil {
			return zero, err
		}
		totalBoxes, totalKg := RecomputeTotals(items)
		set["items"] = items
		set["totalBoxes"] = totalBoxes
		set["totalKg"] = totalKg
	}
	if input.StoreName != nil {
		set["storeName"] = *input.StoreName
	}
	if input.Date != nil {
		set["date"] = *input.Date
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	if len(set) == 0 {
		return existing, nil
	}

	return s.UpdateById(ctx, donationID, &UpdateData{Set: set})
}
