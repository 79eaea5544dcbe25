package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng:
// kết nối cơ sở dữ liệu, server HTTP, tài khoản staff khởi tạo và
// cấu hình gửi thông báo.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật ký token
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Tài khoản staff đầu tiên, seed khi cơ sở dữ liệu chưa có staff nào.
	InitStaffEmail string `env:"INIT_STAFF_EMAIL" envDefault:"staff@foodbridge.local"` // Email staff khởi tạo
	InitStaffName  string `env:"INIT_STAFF_NAME" envDefault:"FoodBridge Staff"`        // Tên hiển thị staff khởi tạo
	InitStaffToken string `env:"INIT_STAFF_TOKEN"`                                     // Token gán sẵn cho staff khởi tạo (bỏ trống = tự phát hành và log một lần)

	// Múi giờ dùng cho các phép so sánh theo ngày (feed sắp tới, lọc báo cáo).
	ReportTimezone string `env:"REPORT_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)

	// SMTP cho kênh gửi email thông báo (optional, bỏ trống = tắt kênh email).
	SMTPHost     string `env:"SMTP_HOST"`                                       // SMTP server host
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`                      // SMTP server port
	SMTPUsername string `env:"SMTP_USERNAME"`                                   // Tài khoản SMTP
	SMTPPassword string `env:"SMTP_PASSWORD"`                                   // Mật khẩu SMTP
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"noreply@foodbridge.local"` // Địa chỉ gửi

	// Webhook nhận bản sao thông báo (optional, bỏ trống = tắt kênh webhook).
	NotifyWebhookURL     string `env:"NOTIFY_WEBHOOK_URL"`                     // URL webhook downstream
	NotifyWebhookTimeout int    `env:"NOTIFY_WEBHOOK_TIMEOUT" envDefault:"10"` // Timeout gọi webhook (giây)

	// Delivery queue worker.
	DeliveryBatchSize  int `env:"DELIVERY_BATCH_SIZE" envDefault:"10"` // Số item xử lý mỗi tick
	DeliveryMaxRetries int `env:"DELIVERY_MAX_RETRIES" envDefault:"3"` // Số lần retry tối đa
	DeliveryIntervalS  int `env:"DELIVERY_INTERVAL_S" envDefault:"5"`  // Chu kỳ tick của processor (giây)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env, đi dần lên thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env theo GO_ENV rồi parse vào struct.
// File env không tồn tại không phải lỗi chết người: biến môi trường
// của process vẫn được env.Parse đọc bình thường.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
