package router

import (
	"fmt"
	"food_bridge/core/api/handler"
	"food_bridge/core/api/middleware"
	models "food_bridge/core/api/models/mongodb"

	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// ⚠️ QUAN TRỌNG: BUG FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 có BUG nghiêm trọng với cách đăng ký middleware trực tiếp trong route.
// Middleware sẽ KHÔNG được gọi nếu dùng cách trực tiếp!
//
// ❌ CÁCH SAI (KHÔNG HOẠT ĐỘNG):
//    router.Get("/path", middleware.AuthMiddleware(""), handler)
//    → Middleware sẽ KHÔNG được gọi, request sẽ bỏ qua middleware!
//
// ✅ CÁCH ĐÚNG (PHẢI DÙNG):
//    authMiddleware := middleware.AuthMiddleware("")
//    registerRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{authMiddleware}, handler)
//    → Middleware sẽ được gọi đúng cách thông qua .Use() method
//
// 🔍 KIỂM TRA:
//    Nếu thấy route nào dùng cách trực tiếp router.Get/Post/Put/Delete(path, middleware, handler)
//    → PHẢI SỬA NGAY thành registerRouteWithMiddleware!
//
// ============================================================================

// CONFIGS

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateOne(c fiber.Ctx) error
	UpdateMany(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	FindOneAndUpdate(c fiber.Ctx) error

	// Delete
	DeleteOne(c fiber.Ctx) error
	DeleteMany(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	FindOneAndDelete(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
	UpsertMany(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	// Create
	InsOne  bool // Insert One
	InsMany bool // Insert Many

	// Read
	Find     bool // Find All
	FindOne  bool // Find One
	FindById bool // Find By Id
	FindIds  bool // Find Many By Ids
	Paginate bool // Find With Pagination

	// Update
	UpdOne  bool // Update One
	UpdMany bool // Update Many
	UpdById bool // Update By Id
	FindUpd bool // Find One And Update

	// Delete
	DelOne  bool // Delete One
	DelMany bool // Delete Many
	DelById bool // Delete By Id
	FindDel bool // Find One And Delete

	// Other
	Count    bool // Count Documents
	Distinct bool // Distinct
	Upsert   bool // Upsert One
	UpsMany  bool // Upsert Many
	Exists   bool // Document Exists
}

// Config cho từng collection
var (
	readOnlyConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: false, UpdMany: false, UpdById: false,
		FindUpd: false,
		DelOne:  false, DelMany: false, DelById: false,
		FindDel: false,
		Count:   true, Distinct: true,
		Upsert: false, UpsMany: false, Exists: true,
	}

	readWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdMany: true, UpdById: true,
		FindUpd: true,
		DelOne:  true, DelMany: true, DelById: true,
		FindDel: true,
		Count:   true, Distinct: true,
		Upsert: true, UpsMany: true, Exists: true,
	}

	// Auth Module Collections
	accountConfig = readWriteConfig

	// Directory Module Collections
	storeConfig     = readWriteConfig
	volunteerConfig = readWriteConfig

	// Pickup Module Collections
	scheduleConfig = readWriteConfig

	// Donation Module Collections
	// Ghi đi qua các route nghiệp vụ (insert-one của volunteer, manual, edit)
	// để tổng số thùng/kg luôn được tính lại, nên CRUD chung chỉ mở đọc
	donationConfig = readOnlyConfig

	// Notification Module Collections
	notificationConfig    = readOnlyConfig // Thông báo là write-once, API chỉ đọc
	deliveryHistoryConfig = readOnlyConfig // History chỉ đọc
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// registerRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method (cách đúng theo Fiber v3)
//
// ⚠️ QUAN TRỌNG: Đây là CÁCH DUY NHẤT hoạt động đúng trong Fiber v3!
//
// ❌ KHÔNG DÙNG cách trực tiếp: router.Get(path, middleware, handler) - middleware sẽ KHÔNG được gọi!
// ✅ PHẢI DÙNG cách này: registerRouteWithMiddleware với .Use() method
//
// Ví dụ sử dụng:
//
//	staffMiddleware := middleware.AuthMiddleware(models.RoleStaff)
//	registerRouteWithMiddleware(router, "/schedule", "POST", "/cancel/:id", []fiber.Handler{staffMiddleware}, handler)
func registerRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware sẽ chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw) // ← ĐÂY LÀ CÁCH ĐÚNG - dùng .Use() thay vì truyền trực tiếp
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// registerCRUDRoutes đăng ký các route CRUD cho một collection.
// requiredRole áp dụng cho toàn bộ route trong set ("" = chỉ cần đăng nhập).
//
// ⚠️ LƯU Ý: Hàm này đã dùng registerRouteWithMiddleware (cách đúng), không cần sửa.
// Nếu thêm route mới bên ngoài hàm này, PHẢI dùng registerRouteWithMiddleware (xem comment ở đầu file)
func (r *Router) registerCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, requiredRole string) {
	fmt.Printf("[ROUTER] Registering CRUD routes for prefix: %s, role: %s\n", prefix, requiredRole)
	roleMiddleware := middleware.AuthMiddleware(requiredRole)

	// Create operations
	if config.InsOne {
		registerRouteWithMiddleware(router, prefix, "POST", "/insert-one", []fiber.Handler{roleMiddleware}, h.InsertOne)
	}
	if config.InsMany {
		registerRouteWithMiddleware(router, prefix, "POST", "/insert-many", []fiber.Handler{roleMiddleware}, h.InsertMany)
	}

	// Read operations
	if config.Find {
		registerRouteWithMiddleware(router, prefix, "GET", "/find", []fiber.Handler{roleMiddleware}, h.Find)
	}
	if config.FindOne {
		registerRouteWithMiddleware(router, prefix, "GET", "/find-one", []fiber.Handler{roleMiddleware}, h.FindOne)
	}
	if config.FindById {
		registerRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", []fiber.Handler{roleMiddleware}, h.FindOneById)
	}
	if config.FindIds {
		registerRouteWithMiddleware(router, prefix, "POST", "/find-by-ids", []fiber.Handler{roleMiddleware}, h.FindManyByIds)
	}
	if config.Paginate {
		registerRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", []fiber.Handler{roleMiddleware}, h.FindWithPagination)
	}

	// Update operations
	if config.UpdOne {
		registerRouteWithMiddleware(router, prefix, "PUT", "/update-one", []fiber.Handler{roleMiddleware}, h.UpdateOne)
	}
	if config.UpdMany {
		registerRouteWithMiddleware(router, prefix, "PUT", "/update-many", []fiber.Handler{roleMiddleware}, h.UpdateMany)
	}
	if config.UpdById {
		registerRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", []fiber.Handler{roleMiddleware}, h.UpdateById)
	}
	if config.FindUpd {
		registerRouteWithMiddleware(router, prefix, "PUT", "/find-one-and-update", []fiber.Handler{roleMiddleware}, h.FindOneAndUpdate)
	}

	// Delete operations
	if config.DelOne {
		registerRouteWithMiddleware(router, prefix, "DELETE", "/delete-one", []fiber.Handler{roleMiddleware}, h.DeleteOne)
	}
	if config.DelMany {
		registerRouteWithMiddleware(router, prefix, "DELETE", "/delete-many", []fiber.Handler{roleMiddleware}, h.DeleteMany)
	}
	if config.DelById {
		registerRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", []fiber.Handler{roleMiddleware}, h.DeleteById)
	}
	if config.FindDel {
		registerRouteWithMiddleware(router, prefix, "DELETE", "/find-one-and-delete", []fiber.Handler{roleMiddleware}, h.FindOneAndDelete)
	}

	// Other operations
	if config.Count {
		registerRouteWithMiddleware(router, prefix, "GET", "/count", []fiber.Handler{roleMiddleware}, h.CountDocuments)
	}
	if config.Distinct {
		registerRouteWithMiddleware(router, prefix, "GET", "/distinct", []fiber.Handler{roleMiddleware}, h.Distinct)
	}
	if config.Upsert {
		registerRouteWithMiddleware(router, prefix, "POST", "/upsert-one", []fiber.Handler{roleMiddleware}, h.Upsert)
	}
	if config.UpsMany {
		registerRouteWithMiddleware(router, prefix, "POST", "/upsert-many", []fiber.Handler{roleMiddleware}, h.UpsertMany)
	}
	if config.Exists {
		registerRouteWithMiddleware(router, prefix, "GET", "/exists", []fiber.Handler{roleMiddleware}, h.DocumentExists)
	}
}

// CÁC HÀM ĐĂNG KÝ ROUTES

// registerSystemRoutes đăng ký các route cho system operations
func registerSystemRoutes(router fiber.Router) error {
	// Khởi tạo SystemHandler
	systemHandler, err := handler.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %v", err)
	}

	// System routes (public, không cần auth)
	router.Get("/system/health", systemHandler.HandleHealth)

	return nil
}

// registerAuthRoutes đăng ký các route quản lý tài khoản truy cập.
// Staff tạo tài khoản và xoay token; mọi tài khoản xem được chính mình qua /auth/me.
//
// ⚠️ LƯU Ý: Tất cả routes ở đây PHẢI dùng registerRouteWithMiddleware (xem comment ở đầu file)
func (r *Router) registerAuthRoutes(router fiber.Router) error {
	accountHandler, err := handler.NewAccountHandler()
	if err != nil {
		return fmt.Errorf("failed to create account handler: %v", err)
	}

	// Xoay token cho một tài khoản (token cũ mất hiệu lực ngay)
	staffMiddleware := middleware.AuthMiddleware(models.RoleStaff)
	registerRouteWithMiddleware(router, "/auth/account", "POST", "/rotate-token/:id", []fiber.Handler{staffMiddleware}, accountHandler.HandleRotateToken)

	// Tài khoản hiện tại (mọi vai trò đã đăng nhập)
	authOnlyMiddleware := middleware.AuthMiddleware("")
	registerRouteWithMiddleware(router, "/auth", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, accountHandler.HandleMe)

	// CRUD routes (InsertOne được override: tạo tài khoản + phát hành token)
	r.registerCRUDRoutes(router, "/auth/account", accountHandler, accountConfig, models.RoleStaff)

	return nil
}

// registerDirectoryRoutes đăng ký các route cho danh bạ cửa hàng và tình nguyện viên.
// Staff quản lý qua CRUD chuẩn; store/volunteer tự phục vụ qua các route /me.
//
// ⚠️ LƯU Ý: Tất cả routes ở đây PHẢI dùng registerRouteWithMiddleware (xem comment ở đầu file)
func (r *Router) registerDirectoryRoutes(router fiber.Router) error {
	staffMiddleware := middleware.AuthMiddleware(models.RoleStaff)

	// Store routes
	storeHandler, err := handler.NewStoreHandler()
	if err != nil {
		return fmt.Errorf("failed to create store handler: %v", err)
	}

	// Duyệt cửa hàng (staff)
	registerRouteWithMiddleware(router, "/store", "POST", "/approve/:id", []fiber.Handler{staffMiddleware}, storeHandler.HandleApprove)

	// Tự phục vụ cho tài khoản cửa hàng
	storeMiddleware := middleware.AuthMiddleware(models.RoleStore)
	registerRouteWithMiddleware(router, "/store", "GET", "/me", []fiber.Handler{storeMiddleware}, storeHandler.HandleGetMe)
	registerRouteWithMiddleware(router, "/store", "PUT", "/me", []fiber.Handler{storeMiddleware}, storeHandler.HandleUpdateMe)
	registerRouteWithMiddleware(router, "/store", "PUT", "/me/unavailable-dates", []fiber.Handler{storeMiddleware}, storeHandler.HandleUnavailableDates)

	// CRUD routes (staff)
	r.registerCRUDRoutes(router, "/store", storeHandler, storeConfig, models.RoleStaff)

	// Volunteer routes
	volunteerHandler, err := handler.NewVolunteerHandler()
	if err != nil {
		return fmt.Errorf("failed to create volunteer handler: %v", err)
	}

	// Tự phục vụ cho tài khoản tình nguyện viên
	volunteerMiddleware := middleware.AuthMiddleware(models.RoleVolunteer)
	registerRouteWithMiddleware(router, "/volunteer", "GET", "/me", []fiber.Handler{volunteerMiddleware}, volunteerHandler.HandleGetMe)
	registerRouteWithMiddleware(router, "/volunteer", "PUT", "/me", []fiber.Handler{volunteerMiddleware}, volunteerHandler.HandleUpdateMe)

	// CRUD routes (staff)
	r.registerCRUDRoutes(router, "/volunteer", volunteerHandler, volunteerConfig, models.RoleStaff)

	return nil
}

// registerPickupRoutes đăng ký các route cho lịch lấy hàng, feed phân công
// và bảng phủ sóng. Các bước xác nhận gắn với vai trò: store xác nhận sẵn sàng,
// volunteer xác nhận lấy hàng và giao hàng.
//
// ⚠️ LƯU Ý: Tất cả routes ở đây PHẢI dùng registerRouteWithMiddleware (xem comment ở đầu file)
func (r *Router) registerPickupRoutes(router fiber.Router) error {
	scheduleHandler, err := handler.NewScheduleHandler()
	if err != nil {
		return fmt.Errorf("failed to create schedule handler: %v", err)
	}

	staffMiddleware := middleware.AuthMiddleware(models.RoleStaff)
	storeMiddleware := middleware.AuthMiddleware(models.RoleStore)
	volunteerMiddleware := middleware.AuthMiddleware(models.RoleVolunteer)
	authOnlyMiddleware := middleware.AuthMiddleware("")

	// Staff sửa và hủy lịch (qua logic transition, không dùng update-by-id chung
	// để các trường xác nhận không bị ghi đè tùy tiện)
	registerRouteWithMiddleware(router, "/schedule", "PUT", "/edit/:id", []fiber.Handler{staffMiddleware}, scheduleHandler.HandleEdit)
	registerRouteWithMiddleware(router, "/schedule", "POST", "/cancel/:id", []fiber.Handler{staffMiddleware}, scheduleHandler.HandleCancel)

	// Các bước xác nhận theo vai trò
	registerRouteWithMiddleware(router, "/schedule", "POST", "/confirm-readiness/:id", []fiber.Handler{storeMiddleware}, scheduleHandler.HandleConfirmReadiness)
	registerRouteWithMiddleware(router, "/schedule", "POST", "/confirm-pickup/:id", []fiber.Handler{volunteerMiddleware}, scheduleHandler.HandleConfirmPickup)
	registerRouteWithMiddleware(router, "/schedule", "POST", "/confirm-delivery/:id", []fiber.Handler{volunteerMiddleware}, scheduleHandler.HandleConfirmDelivery)

	// Feed phân công: actor xem của mình, staff xem theo actor bất kỳ.
	// /feed/live long-poll qua FeedHub, đẩy lại snapshot khi collection đổi.
	registerRouteWithMiddleware(router, "/schedule", "GET", "/feed", []fiber.Handler{authOnlyMiddleware}, scheduleHandler.HandleFeed)
	registerRouteWithMiddleware(router, "/schedule", "GET", "/feed/live", []fiber.Handler{authOnlyMiddleware}, scheduleHandler.HandleFeedLive)
	registerRouteWithMiddleware(router, "/schedule", "GET", "/feed/store/:id", []fiber.Handler{staffMiddleware}, scheduleHandler.HandleFeedForStore)
	registerRouteWithMiddleware(router, "/schedule", "GET", "/feed/volunteer/:id", []fiber.Handler{staffMiddleware}, scheduleHandler.HandleFeedForVolunteer)

	// CRUD routes (staff, InsertOne được override với validation nghiệp vụ)
	r.registerCRUDRoutes(router, "/schedule", scheduleHandler, scheduleConfig, models.RoleStaff)

	// Coverage routes (staff)
	coverageHandler, err := handler.NewCoverageHandler()
	if err != nil {
		return fmt.Errorf("failed to create coverage handler: %v", err)
	}
	registerRouteWithMiddleware(router, "/coverage", "GET", "/summary", []fiber.Handler{staffMiddleware}, coverageHandler.HandleSummary)

	return nil
}

// registerDonationRoutes đăng ký các route cho bản ghi quyên góp.
// Volunteer ghi nhận sau khi giao hàng; staff nhập tay và sửa; mọi ghi
// đều đi qua validation item và tính lại tổng.
//
// ⚠️ LƯU Ý: Tất cả routes ở đây PHẢI dùng registerRouteWithMiddleware (xem comment ở đầu file)
func (r *Router) registerDonationRoutes(router fiber.Router) error {
	donationHandler, err := handler.NewDonationHandler()
	if err != nil {
		return fmt.Errorf("failed to create donation handler: %v", err)
	}

	staffMiddleware := middleware.AuthMiddleware(models.RoleStaff)
	volunteerMiddleware := middleware.AuthMiddleware(models.RoleVolunteer)

	// Volunteer ghi nhận quyên góp (status luôn là pending, volunteerId lấy từ token)
	registerRouteWithMiddleware(router, "/donation", "POST", "/insert-one", []fiber.Handler{volunteerMiddleware}, donationHandler.InsertOne)

	// Staff nhập tay và sửa
	registerRouteWithMiddleware(router, "/donation", "POST", "/manual", []fiber.Handler{staffMiddleware}, donationHandler.HandleManual)
	registerRouteWithMiddleware(router, "/donation", "PUT", "/edit/:id", []fiber.Handler{staffMiddleware}, donationHandler.HandleEdit)

	// CRUD routes (staff, chỉ đọc)
	r.registerCRUDRoutes(router, "/donation", donationHandler, donationConfig, models.RoleStaff)

	return nil
}

// registerReportRoutes đăng ký các route báo cáo quyên góp (staff)
//
// ⚠️ LƯU Ý: Tất cả routes ở đây PHẢI dùng registerRouteWithMiddleware (xem comment ở đầu file)
func (r *Router) registerReportRoutes(router fiber.Router) error {
	reportHandler, err := handler.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %v", err)
	}

	staffMiddleware := middleware.AuthMiddleware(models.RoleStaff)
	registerRouteWithMiddleware(router, "/report", "POST", "/donations", []fiber.Handler{staffMiddleware}, reportHandler.HandleQuery)
	registerRouteWithMiddleware(router, "/report", "POST", "/summary", []fiber.Handler{staffMiddleware}, reportHandler.HandleSummary)
	registerRouteWithMiddleware(router, "/report", "POST", "/export", []fiber.Handler{staffMiddleware}, reportHandler.HandleExport)

	return nil
}

// registerNotificationRoutes đăng ký các route cho thông báo trong ứng dụng.
// Thông báo do emitter ghi, API chỉ đọc: staff đọc toàn bộ, actor đọc hộp thư
// của mình qua /mine.
//
// ⚠️ LƯU Ý: Tất cả routes ở đây PHẢI dùng registerRouteWithMiddleware (xem comment ở đầu file)
func (r *Router) registerNotificationRoutes(router fiber.Router) error {
	notificationHandler, err := handler.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification handler: %v", err)
	}

	// Hộp thư của người gọi (mọi vai trò đã đăng nhập)
	authOnlyMiddleware := middleware.AuthMiddleware("")
	registerRouteWithMiddleware(router, "/notification", "GET", "/mine", []fiber.Handler{authOnlyMiddleware}, notificationHandler.HandleMine)

	// CRUD routes (staff, chỉ đọc)
	r.registerCRUDRoutes(router, "/notification", notificationHandler, notificationConfig, models.RoleStaff)

	return nil
}

// registerDeliveryRoutes đăng ký các route tra cứu lịch sử gửi thông báo (staff)
//
// ⚠️ LƯU Ý: Tất cả routes ở đây PHẢI dùng registerRouteWithMiddleware (xem comment ở đầu file)
func (r *Router) registerDeliveryRoutes(router fiber.Router) error {
	historyHandler, err := handler.NewDeliveryHistoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create delivery history handler: %v", err)
	}

	staffMiddleware := middleware.AuthMiddleware(models.RoleStaff)

	// Truy vết các lần gửi của một thông báo
	registerRouteWithMiddleware(router, "/delivery/history", "GET", "/by-notification/:id", []fiber.Handler{staffMiddleware}, historyHandler.HandleByNotification)

	// CRUD routes (staff, chỉ đọc)
	r.registerCRUDRoutes(router, "/delivery/history", historyHandler, deliveryHistoryConfig, models.RoleStaff)

	return nil
}

// SetupRoutes thiết lập tất cả các route cho ứng dụng
func SetupRoutes(app *fiber.App) error {
	// Khởi tạo route prefix
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)

	// Khởi tạo router
	router := NewRouter(app)

	// 1. System Routes
	if err := registerSystemRoutes(v1); err != nil {
		return fmt.Errorf("failed to register system routes: %v", err)
	}

	// 2. Auth Routes (Tài khoản truy cập)
	if err := router.registerAuthRoutes(v1); err != nil {
		return fmt.Errorf("failed to register auth routes: %v", err)
	}

	// 3. Directory Routes (Cửa hàng + Tình nguyện viên)
	if err := router.registerDirectoryRoutes(v1); err != nil {
		return fmt.Errorf("failed to register directory routes: %v", err)
	}

	// 4. Pickup Routes (Lịch lấy hàng + Feed + Coverage)
	if err := router.registerPickupRoutes(v1); err != nil {
		return fmt.Errorf("failed to register pickup routes: %v", err)
	}

	// 5. Donation Routes
	if err := router.registerDonationRoutes(v1); err != nil {
		return fmt.Errorf("failed to register donation routes: %v", err)
	}

	// 6. Report Routes
	if err := router.registerReportRoutes(v1); err != nil {
		return fmt.Errorf("failed to register report routes: %v", err)
	}

	// 7. Notification Routes
	if err := router.registerNotificationRoutes(v1); err != nil {
		return fmt.Errorf("failed to register notification routes: %v", err)
	}

	// 8. Delivery Routes
	if err := router.registerDeliveryRoutes(v1); err != nil {
		return fmt.Errorf("failed to register delivery routes: %v", err)
	}

	return nil
}
