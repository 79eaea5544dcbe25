package handler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"food_bridge/core/api/dto"
	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/api/services"
	"food_bridge/core/common"
	"food_bridge/core/notification"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleHandler xử lý các request liên quan đến lịch lấy hàng
// và vòng đời xác nhận sẵn sàng / lấy hàng / giao hàng
type ScheduleHandler struct {
	*BaseHandler[models.Schedule, dto.ScheduleCreateInput, dto.ScheduleUpdateInput]
	scheduleService *services.ScheduleService
	feedService     *services.FeedService
}

// NewScheduleHandler tạo một instance mới của ScheduleHandler
func NewScheduleHandler() (*ScheduleHandler, error) {
	scheduleService, err := services.NewScheduleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %v", err)
	}

	feedService, err := services.NewFeedService()
	if err != nil {
		return nil, fmt.Errorf("failed to create feed service: %v", err)
	}

	handler := &ScheduleHandler{
		scheduleService: scheduleService,
		feedService:     feedService,
	}
	handler.BaseHandler = NewBaseHandler[models.Schedule, dto.ScheduleCreateInput, dto.ScheduleUpdateInput](scheduleService)

	return handler, nil
}

// emitAfterConfirm gọi emitter thông báo sau khi mutation đã ghi thành công.
// Emitter lỗi khởi tạo thì chỉ log, không bao giờ làm hỏng response của
// actor: mutation đã xong, thông báo là best-effort.
func emitAfterConfirm(ctx context.Context, schedule *models.Schedule, emit func(*notification.Emitter)) {
	emitter, err := notification.GetEmitter()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"scheduleId": schedule.ID.Hex(),
			"error":      err.Error(),
		}).Error("Không khởi tạo được notification emitter, bỏ qua thông báo")
		return
	}
	emit(emitter)
}

// scheduleIDFromParams đọc và validate :id của lịch từ URL params
func scheduleIDFromParams(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	scheduleID, _ := primitive.ObjectIDFromHex(id)
	return scheduleID, nil
}

// InsertOne override CRUD chuẩn: tạo lịch đi qua ScheduleService.Create
// để denormalize tên cửa hàng/tình nguyện viên và chặn ngày nghỉ của cửa hàng.
func (h *ScheduleHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ScheduleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.validateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		schedule, err := h.scheduleService.Create(requestContext(c), &input)
		h.HandleResponse(c, schedule, err)
		return nil
	})
}

// HandleEdit staff sửa lịch lấy hàng: đổi ngày/giờ/người, denormalize lại
// tên khi đổi cửa hàng hoặc tình nguyện viên. Các cờ xác nhận đã có
// không bị reset.
func (h *ScheduleHandler) HandleEdit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scheduleID, err := scheduleIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.ScheduleUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.validateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		schedule, err := h.scheduleService.Edit(requestContext(c), scheduleID, &input)
		h.HandleResponse(c, schedule, err)
		return nil
	})
}

// HandleCancel staff hủy lịch lấy hàng. Hủy được từ mọi trạng thái.
func (h *ScheduleHandler) HandleCancel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scheduleID, err := scheduleIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		schedule, err := h.scheduleService.Cancel(requestContext(c), scheduleID)
		h.HandleResponse(c, schedule, err)
		return nil
	})
}

// HandleConfirmReadiness cửa hàng báo hàng quyên góp đã đóng gói sẵn sàng.
// Chỉ cửa hàng sở hữu lịch gọi được. Thành công thì phát thông báo
// readiness_confirmed cho tình nguyện viên được phân công (nếu có).
func (h *ScheduleHandler) HandleConfirmReadiness(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scheduleID, err := scheduleIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ctx := requestContext(c)
		schedule, err := h.scheduleService.ConfirmReadiness(ctx, scheduleID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		emitAfterConfirm(ctx, &schedule, func(e *notification.Emitter) {
			e.EmitReadinessConfirmed(ctx, &schedule)
		})

		h.HandleResponse(c, schedule, nil)
		return nil
	})
}

// HandleConfirmPickup tình nguyện viên xác nhận đã lấy hàng tại cửa hàng.
// Chỉ tình nguyện viên được phân công gọi được. Thành công thì phát
// thông báo pickup_confirmed cho cửa hàng.
func (h *ScheduleHandler) HandleConfirmPickup(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scheduleID, err := scheduleIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ctx := requestContext(c)
		schedule, err := h.scheduleService.ConfirmPickup(ctx, scheduleID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		emitAfterConfirm(ctx, &schedule, func(e *notification.Emitter) {
			e.EmitPickupConfirmed(ctx, &schedule)
		})

		h.HandleResponse(c, schedule, nil)
		return nil
	})
}

// HandleConfirmDelivery tình nguyện viên xác nhận đã giao hàng tới điểm nhận.
// Bắt buộc đã xác nhận lấy hàng trước; thành công thì lịch chuyển sang
// completed và phát thông báo delivery_confirmed cho cửa hàng.
func (h *ScheduleHandler) HandleConfirmDelivery(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scheduleID, err := scheduleIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ctx := requestContext(c)
		schedule, err := h.scheduleService.ConfirmDelivery(ctx, scheduleID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		emitAfterConfirm(ctx, &schedule, func(e *notification.Emitter) {
			e.EmitDeliveryConfirmed(ctx, &schedule)
		})

		h.HandleResponse(c, schedule, nil)
		return nil
	})
}

// HandleFeed trả về snapshot feed lịch của tác nhân đang gọi:
// cửa hàng thấy lịch của mình, tình nguyện viên thấy lịch được phân công,
// staff thấy toàn bộ. View upcoming sắp tăng dần theo ngày, history giảm dần.
func (h *ScheduleHandler) HandleFeed(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		snapshot, err := h.feedService.SnapshotForActor(requestContext(c))
		h.HandleResponse(c, snapshot, err)
		return nil
	})
}

// Trần thời gian giữ một request long-poll feed trước khi trả snapshot hiện tại
const maxFeedWaitMs = 60_000

// HandleFeedLive long-poll snapshot feed qua FeedHub: đăng ký một subscription,
// nhận ngay snapshot hiện tại; nếu có waitMs thì giữ request chờ snapshot
// tính lại sau thay đổi trên collection schedules, hết hạn chờ thì trả
// snapshot đang có. Subscription gỡ khi request kết thúc.
func (h *ScheduleHandler) HandleFeedLive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		hub, err := services.GetFeedHub()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				"Feed hub chưa sẵn sàng",
				common.StatusServiceUnavailable,
				err,
			))
			return nil
		}

		waitMs, _ := strconv.Atoi(c.Query("waitMs", "0"))
		if waitMs < 0 {
			waitMs = 0
		}
		if waitMs > maxFeedWaitMs {
			waitMs = maxFeedWaitMs
		}

		ctx, cancel := context.WithCancel(requestContext(c))
		defer cancel()

		_, ch, err := hub.Subscribe(ctx)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Snapshot đầu tiên được đẩy ngay khi đăng ký
		snapshot, ok := <-ch
		if !ok {
			h.HandleResponse(c, nil, common.ErrNotFound)
			return nil
		}

		if waitMs > 0 {
			timer := time.NewTimer(time.Duration(waitMs) * time.Millisecond)
			defer timer.Stop()
			select {
			case next, ok := <-ch:
				if ok {
					snapshot = next
				}
			case <-timer.C:
			}
		}

		h.HandleResponse(c, snapshot, nil)
		return nil
	})
}

// HandleFeedForStore staff xem feed lịch của một cửa hàng bất kỳ theo id
func (h *ScheduleHandler) HandleFeedForStore(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		storeID, _ := primitive.ObjectIDFromHex(id)
		snapshot, err := h.feedService.SnapshotForStore(requestContext(c), storeID)
		h.HandleResponse(c, snapshot, err)
		return nil
	})
}

// HandleFeedForVolunteer staff xem feed lịch của một tình nguyện viên bất kỳ theo id
func (h *ScheduleHandler) HandleFeedForVolunteer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		volunteerID, _ := primitive.ObjectIDFromHex(id)
		snapshot, err := h.feedService.SnapshotForVolunteer(requestContext(c), volunteerID)
		h.HandleResponse(c, snapshot, err)
		return nil
	})
}
