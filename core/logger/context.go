package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về logger entry kèm thông tin request từ Fiber:
// request_id (do requestid middleware set), method, path, ip.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := logrus.NewEntry(GetAppLogger())

	var requestID string
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok {
			requestID = ridStr
		}
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	return entry.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})
}

// WithModule trả về logger entry gắn tên module
// (schedule, donation, report, coverage, notification, delivery, auth...).
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithCollection trả về logger entry gắn tên collection MongoDB.
func WithCollection(collection string) *logrus.Entry {
	return GetAppLogger().WithField("collection", collection)
}

// WithError trả về logger entry kèm error.
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}
