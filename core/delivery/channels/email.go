package channels

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured báo kênh chưa được cấu hình. Đây là lỗi vĩnh viễn
// trong vòng đời process (cấu hình chỉ nạp lúc khởi động), processor
// đánh dấu item failed ngay thay vì retry.
var ErrNotConfigured = errors.New("channel is not configured")

// EmailConfig là cấu hình SMTP của kênh email, nạp một lần từ biến
// môi trường. Host rỗng nghĩa là kênh email bị tắt.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled cho biết kênh email có được cấu hình không.
func (c EmailConfig) Enabled() bool {
	return c.Host != ""
}

// SendEmail gửi một thông báo dạng text qua SMTP.
func SendEmail(ctx context.Context, cfg EmailConfig, recipient string, subject string, content string) error {
	if !cfg.Enabled() {
		return fmt.Errorf("smtp: %w", ErrNotConfigured)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", content)

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return dialer.DialAndSend(msg)
}
