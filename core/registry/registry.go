// Package registry cung cấp một registry generic, thread-safe để quản lý
// các singleton dùng chung trong ứng dụng (hiện tại là các *mongo.Collection).
package registry

import (
	"fmt"
	"sync"

	"food_bridge/core/common"
)

// Registry lưu items theo tên, an toàn khi truy cập đồng thời.
//
// Example:
//
//	reg := NewRegistry[string]()
//	reg.Register("key", "value")
//	if v, ok := reg.Get("key"); ok {
//	    fmt.Println(v)
//	}
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewRegistry tạo một registry rỗng cho kiểu T.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký item theo tên. Item trùng tên sẽ bị ghi đè.
//
// Returns:
//   - isNew: true nếu tên chưa tồn tại trước đó
//   - err: lỗi nếu tên rỗng
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("registry: name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get trả về item theo tên và cờ tồn tại.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// Len trả về số item đang được đăng ký.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// ClearAll xóa toàn bộ items. Nếu cleanup được truyền vào, nó được gọi
// cho từng item trước khi xóa; lỗi cleanup gom lại và trả về một lần.
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if cerr := cleanup(item); cerr != nil {
				errs = append(errs, fmt.Errorf("cleanup %s: %w", name, cerr))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("registry: cleanup errors: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
