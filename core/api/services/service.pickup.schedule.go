package services

import (
	"context"
	"fmt"
	"time"

	"food_bridge/core/api/dto"
	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"
	"food_bridge/core/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ====================================
// CÁC HÀM QUYẾT ĐỊNH CHUYỂN TRẠNG THÁI
// ====================================
// Tách thành hàm thuần (không I/O) để vòng đời xác nhận chỉ có một chỗ
// định nghĩa: đầu vào là document hiện tại, đầu ra là update cần ghi
// hoặc lỗi từ chối. Các method Confirm* bên dưới là nơi duy nhất gọi chúng.

// buildReadinessUpdate quyết định cập nhật khi cửa hàng báo hàng đã sẵn sàng.
// Từ chối khi lịch đã ở trạng thái ready; các trạng thái khác đều nhận.
func buildReadinessUpdate(schedule *models.Schedule, now int64) (*UpdateData, error) {
	if schedule.Status == models.ScheduleStatusReady {
		return nil, common.ErrAlreadyReady
	}
	return &UpdateData{
		Set: map[string]interface{}{
			"status":           models.ScheduleStatusReady,
			"readyConfirmedAt": now,
		},
	}, nil
}

// buildPickupUpdate quyết định cập nhật khi tình nguyện viên xác nhận đã lấy hàng.
// Không có precondition trạng thái: xác nhận lại chỉ ghi đè timestamp.
// Status của lịch giữ nguyên, chỉ bật cờ pickupConfirmed.
func buildPickupUpdate(schedule *models.Schedule, now int64) (*UpdateData, error) {
	return &UpdateData{
		Set: map[string]interface{}{
			"pickupConfirmed":   true,
			"pickupConfirmedAt": now,
		},
	}, nil
}

// buildDeliveryUpdate quyết định cập nhật khi tình nguyện viên xác nhận đã giao hàng.
// Bắt buộc đã xác nhận lấy hàng trước đó; vi phạm thì từ chối mà không
// ghi bất kỳ thay đổi nào. Thành công thì lịch chuyển sang completed.
func buildDeliveryUpdate(schedule *models.Schedule, now int64) (*UpdateData, error) {
	if !schedule.PickupConfirmed {
		return nil, common.ErrPickupNotConfirmed
	}
	return &UpdateData{
		Set: map[string]interface{}{
			"deliveryConfirmed":   true,
			"deliveryConfirmedAt": now,
			"status":              models.ScheduleStatusCompleted,
		},
	}, nil
}

// ====================================
// SERVICE
// ====================================

// ScheduleService là service quản lý lịch lấy hàng và vòng đời xác nhận
type ScheduleService struct {
	*BaseServiceMongoImpl[models.Schedule]
	storeService     *StoreService
	volunteerService *VolunteerService
	loc              *time.Location // Múi giờ cho các phép so sánh theo ngày
}

// NewScheduleService tạo mới ScheduleService
func NewScheduleService() (*ScheduleService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Schedules)
	if !exist {
		return nil, fmt.Errorf("failed to get schedules collection: %v", common.ErrNotFound)
	}

	storeService, err := NewStoreService()
	if err != nil {
		return nil, err
	}

	volunteerService, err := NewVolunteerService()
	if err != nil {
		return nil, err
	}

	tzName := ""
	if global.MongoDB_ServerConfig != nil {
		tzName = global.MongoDB_ServerConfig.ReportTimezone
	}

	return &ScheduleService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Schedule](collection),
		storeService:         storeService,
		volunteerService:     volunteerService,
		loc:                  utility.LoadLocationOrUTC(tzName),
	}, nil
}

// validatePickupDateAvailable từ chối khi ngày lấy hàng rơi vào ngày nghỉ của cửa hàng.
// PickupDate 0 (chưa có ngày) thì bỏ qua kiểm tra.
func (s *ScheduleService) validatePickupDateAvailable(store *models.Store, pickupDate int64) error {
	if pickupDate == 0 {
		return nil
	}
	dateStr := utility.DateOnlyString(pickupDate, s.loc)
	if store.IsUnavailableOn(dateStr) {
		return common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Cửa hàng '%s' nghỉ vào ngày %s, không nhận lịch lấy hàng", store.Name, dateStr),
			common.StatusConflict,
			nil,
		)
	}
	return nil
}

// Create tạo lịch lấy hàng mới (chỉ staff gọi, chặn ở router).
//
// Business logic:
//   - Denormalize storeName/volunteerName từ hồ sơ tại thời điểm tạo;
//     sau này hồ sơ đổi tên thì lịch vẫn giữ tên cũ
//   - Từ chối ngày lấy hàng rơi vào ngày nghỉ của cửa hàng
//   - Set CreatedBy từ tài khoản trong context
//   - Status để trống, InsertOne tự áp default "scheduled"
func (s *ScheduleService) Create(ctx context.Context, input *dto.ScheduleCreateInput) (models.Schedule, error) {
	var zero models.Schedule

	storeID := utility.String2ObjectID(input.StoreID)
	store, err := s.storeService.FindOneById(ctx, storeID)
	if err != nil {
		return zero, err
	}

	if err := s.validatePickupDateAvailable(&store, input.PickupDate); err != nil {
		return zero, err
	}

	schedule := models.Schedule{
		StoreID:    storeID,
		StoreName:  store.Name,
		PickupDate: input.PickupDate,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		TimeWindow: input.TimeWindow,
		Notes:      input.Notes,
	}

	if input.VolunteerID != "" {
		volunteerID := utility.String2ObjectID(input.VolunteerID)
		volunteer, err := s.volunteerService.FindOneById(ctx, volunteerID)
		if err != nil {
			return zero, err
		}
		schedule.VolunteerID = &volunteerID
		schedule.VolunteerName = volunteer.DisplayName()
	}

	if accountID, ok := GetAccountIDFromContext(ctx); ok {
		schedule.CreatedBy = &accountID
	}

	created, err := s.InsertOne(ctx, schedule)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"scheduleId": created.ID.Hex(),
		"storeId":    created.StoreID.Hex(),
		"pickupDate": created.PickupDate,
	}).Info("Đã tạo lịch lấy hàng")

	return created, nil
}

// Edit cập nhật một phần lịch lấy hàng (chỉ staff gọi, chặn ở router).
//
// Business logic:
//   - Đổi cửa hàng/tình nguyện viên thì denormalize lại tên tương ứng
//   - Đổi ngày hoặc đổi cửa hàng thì kiểm tra lại ngày nghỉ trên cặp
//     (cửa hàng, ngày) sau khi sửa
//   - KHÔNG đụng tới các cờ xác nhận: đổi ngày hay đổi người không xóa
//     lịch sử pickupConfirmed/deliveryConfirmed/readyConfirmedAt đã có
func (s *ScheduleService) Edit(ctx context.Context, scheduleID primitive.ObjectID, input *dto.ScheduleUpdateInput) (models.Schedule, error) {
	var zero models.Schedule

	existing, err := s.FindOneById(ctx, scheduleID)
	if err != nil {
		return zero, err
	}

	set := map[string]interface{}{}

	// Cặp (cửa hàng, ngày) hiệu lực sau khi sửa, dùng cho kiểm tra ngày nghỉ
	effectiveStoreID := existing.StoreID
	effectivePickupDate := existing.PickupDate

	if input.StoreID != "" {
		storeID := utility.String2ObjectID(input.StoreID)
		store, err := s.storeService.FindOneById(ctx, storeID)
		if err != nil {
			return zero, err
		}
		set["storeId"] = storeID
		set["storeName"] = store.Name
		effectiveStoreID = storeID
	}

	if input.VolunteerID != "" {
		volunteerID := utility.String2ObjectID(input.VolunteerID)
		volunteer, err := s.volunteerService.FindOneById(ctx, volunteerID)
		if err != nil {
			return zero, err
		}
		set["volunteerId"] = volunteerID
		set["volunteerName"] = volunteer.DisplayName()
	}

	if input.PickupDate != nil {
		set["pickupDate"] = *input.PickupDate
		effectivePickupDate = *input.PickupDate
	}
	if input.StartTime != nil {
		set["startTime"] = *input.StartTime
	}
	if input.EndTime != nil {
		set["endTime"] = *input.EndTime
	}
	if input.TimeWindow != nil {
		set["timeWindow"] = *input.TimeWindow
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

	// Kiểm tra ngày nghỉ khi ngày hoặc cửa hàng thay đổi
	if input.PickupDate != nil || input.StoreID != "" {
		store, err := s.storeService.FindOneById(ctx, effectiveStoreID)
		if err != nil {
			return zero, err
		}
		if err := s.validatePickupDateAvailable(&store, effectivePickupDate); err != nil {
			return zero, err
		}
	}

	return s.UpdateById(ctx, scheduleID, &UpdateData{Set: set})
}

// Cancel chuyển lịch sang trạng thái cancelled (chỉ staff gọi, chặn ở router).
// Nhận từ mọi trạng thái và không reset các cờ xác nhận đã có.
func (s *ScheduleService) Cancel(ctx context.Context, scheduleID primitive.ObjectID) (models.Schedule, error) {
	update := &UpdateData{
		Set: map[string]interface{}{
			"status": models.ScheduleStatusCancelled,
		},
	}

	schedule, err := s.UpdateById(ctx, scheduleID, update)
	if err != nil {
		return schedule, err
	}

	logrus.WithFields(logrus.Fields{
		"scheduleId": scheduleID.Hex(),
	}).Info("Đã hủy lịch lấy hàng")

	return schedule, nil
}

// ConfirmReadiness cửa hàng báo hàng quyên góp đã đóng gói sẵn sàng.
//
// Chỉ cửa hàng sở hữu lịch được gọi: actorID trong context phải trùng
// storeId của lịch. Đọc document rồi ghi update, KHÔNG check-and-set
// nguyên tử: hai request sát nhau có thể cùng qua precondition và
// request sau ghi đè readyConfirmedAt của request trước.
func (s *ScheduleService) ConfirmReadiness(ctx context.Context, scheduleID primitive.ObjectID) (models.Schedule, error) {
	var zero models.Schedule

	schedule, err := s.FindOneById(ctx, scheduleID)
	if err != nil {
		return zero, err
	}

	actorID, ok := GetActorIDFromContext(ctx)
	if !ok || actorID != schedule.StoreID {
		return zero, common.ErrNotScheduleOwner
	}

	update, err := buildReadinessUpdate(&schedule, utility.CurrentTimeInMilli())
	if err != nil {
		return zero, err
	}

	updated, err := s.UpdateById(ctx, scheduleID, update)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"scheduleId": scheduleID.Hex(),
		"storeId":    schedule.StoreID.Hex(),
	}).Info("Cửa hàng đã xác nhận hàng sẵn sàng")

	return updated, nil
}

// requireAssignedVolunteer kiểm tra actor trong context là tình nguyện viên
// được phân công cho lịch này. Lịch chưa gán người thì từ chối luôn.
func requireAssignedVolunteer(ctx context.Context, schedule *models.Schedule) error {
	if !schedule.HasVolunteer() {
		return common.ErrScheduleNoVolunteer
	}
	actorID, ok := GetActorIDFromContext(ctx)
	if !ok || actorID != *schedule.VolunteerID {
		return common.ErrNotScheduleOwner
	}
	return nil
}

// ConfirmPickup tình nguyện viên xác nhận đã lấy hàng tại cửa hàng.
// Chỉ tình nguyện viên được phân công cho lịch được gọi. Status của lịch
// không đổi, chỉ bật cờ pickupConfirmed kèm timestamp.
func (s *ScheduleService) ConfirmPickup(ctx context.Context, scheduleID primitive.ObjectID) (models.Schedule, error) {
	var zero models.Schedule

	schedule, err := s.FindOneById(ctx, scheduleID)
	if err != nil {
		return zero, err
	}

	if err := requireAssignedVolunteer(ctx, &schedule); err != nil {
		return zero, err
	}

	update, err := buildPickupUpdate(&schedule, utility.CurrentTimeInMilli())
	if err != nil {
		return zero, err
	}

	updated, err := s.UpdateById(ctx, scheduleID, update)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"scheduleId":  scheduleID.Hex(),
		"volunteerId": schedule.VolunteerID.Hex(),
	}).Info("Tình nguyện viên đã xác nhận lấy hàng")

	return updated, nil
}

// ConfirmDelivery tình nguyện viên xác nhận đã giao hàng tới điểm nhận.
// Chỉ tình nguyện viên được phân công cho lịch được gọi. Bắt buộc đã
// xác nhận lấy hàng trước đó, vi phạm trả 409 và không ghi thay đổi nào.
// Thành công thì lịch chuyển sang completed.
func (s *ScheduleService) ConfirmDelivery(ctx context.Context, scheduleID primitive.ObjectID) (models.Schedule, error) {
	var zero models.Schedule

	schedule, err := s.FindOneById(ctx, scheduleID)
	if err != nil {
		return zero, err
	}

	if err := requireAssignedVolunteer(ctx, &schedule); err != nil {
		return zero, err
	}

	update, err := buildDeliveryUpdate(&schedule, utility.CurrentTimeInMilli())
	if err != nil {
		return zero, err
	}

	updated, err := s.UpdateById(ctx, scheduleID, update)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"scheduleId":  scheduleID.Hex(),
		"volunteerId": schedule.VolunteerID.Hex(),
	}).Info("Tình nguyện viên đã xác nhận giao hàng, lịch hoàn tất")

	return updated, nil
}
