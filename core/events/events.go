// Package events cung cấp cơ chế event trung tâm khi dữ liệu thay đổi qua CRUD.
// Các service CRUD không cần override từng method — BaseServiceMongoImpl tự động
// phát event sau mỗi write thành công. Logic phản ứng (feed hub đẩy snapshot mới
// cho subscriber) đăng ký qua OnDataChanged.
package events

import (
	"context"
	"sync"

	"food_bridge/core/logger"
)

// OpInsert, OpUpdate, OpUpsert, OpDelete là các loại thao tác CRUD.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// DataChangeEvent mô tả sự kiện thay đổi dữ liệu.
// Document là bản ghi sau khi thay đổi (nil nếu delete hoặc write nhiều bản ghi).
type DataChangeEvent struct {
	CollectionName string
	Operation      string
	Document       interface{}
}

// DataChangeHandler xử lý sự kiện thay đổi dữ liệu.
type DataChangeHandler func(ctx context.Context, e DataChangeEvent)

var (
	handlers   []DataChangeHandler
	handlersMu sync.RWMutex
)

// OnDataChanged đăng ký handler, gọi lúc init (ví dụ từ feed hub).
func OnDataChanged(h DataChangeHandler) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = append(handlers, h)
}

// EmitDataChanged phát sự kiện tới mọi handler đã đăng ký.
// Mỗi handler chạy trong goroutine riêng, panic được recover
// để một handler hỏng không ảnh hưởng các handler khác.
func EmitDataChanged(ctx context.Context, e DataChangeEvent) {
	handlersMu.RLock()
	list := make([]DataChangeHandler, len(handlers))
	copy(list, handlers)
	handlersMu.RUnlock()

	for _, h := range list {
		go func(fn DataChangeHandler) {
			defer func() {
				if r := recover(); r != nil {
					logger.GetAppLogger().WithFields(map[string]interface{}{
						"panic":      r,
						"collection": e.CollectionName,
						"operation":  e.Operation,
					}).Error("Panic trong data change handler, các handler khác không bị ảnh hưởng")
				}
			}()
			fn(ctx, e)
		}(h)
	}
}
