package global

import (
	"food_bridge/config"
	"food_bridge/core/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB.
type MongoDB_CollectionName struct {
	AuthAccounts    string // Tên collection cho tài khoản truy cập (token, vai trò)
	Stores          string // Tên collection cho cửa hàng quyên góp
	Volunteers      string // Tên collection cho tình nguyện viên
	Schedules       string // Tên collection cho lịch lấy hàng
	Donations       string // Tên collection cho bản ghi quyên góp
	Notifications   string // Tên collection cho thông báo (write-once)
	DeliveryQueue   string // Tên collection cho hàng đợi gửi thông báo
	DeliveryHistory string // Tên collection cho lịch sử gửi thông báo
}

// Các biến toàn cục
var Validate *validator.Validate               // Validator dùng chung, khởi tạo qua InitValidator
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// RegistryCollections chứa các *mongo.Collection đã đăng ký theo tên.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
