package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// filteredKey là field đánh dấu entry bị lọc; AsyncHook sẽ bỏ qua entry mang nó.
const filteredKey = "_filtered"

// FilterHook lọc log entries theo module và log level.
// Entry không khớp filter được đánh dấu thay vì bị drop tại chỗ,
// để các hook phía sau tự quyết định.
type FilterHook struct {
	mu sync.RWMutex

	allowedModules  map[string]bool
	allowedLogTypes map[string]bool

	hasModuleFilter  bool
	hasLogTypeFilter bool
}

// NewFilterHook tạo filter hook từ cấu hình.
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{}
	hook.UpdateFilters(cfg)
	return hook
}

// UpdateFilters cập nhật filters từ config (gọi được lúc runtime).
func (h *FilterHook) UpdateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.allowedModules = parseFilter(cfg.FilterModules)
	h.hasModuleFilter = len(h.allowedModules) > 0 && !h.allowedModules["*"]

	h.allowedLogTypes = parseFilter(cfg.FilterLogTypes)
	h.hasLogTypeFilter = len(h.allowedLogTypes) > 0 && !h.allowedLogTypes["*"]
}

// parseFilter chuyển "value1,value2" thành set; rỗng hoặc "*" = cho phép tất cả.
func parseFilter(filterStr string) map[string]bool {
	result := make(map[string]bool)

	if filterStr == "" || filterStr == "*" {
		result["*"] = true
		return result
	}

	for _, v := range strings.Split(filterStr, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			result[strings.ToLower(v)] = true
		}
	}

	return result
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry không khớp filter bằng field filteredKey.
// Entry không có field "module" luôn được cho qua.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.hasLogTypeFilter {
		if !h.allowedLogTypes[strings.ToLower(entry.Level.String())] {
			entry.Data[filteredKey] = true
			return nil
		}
	}

	if h.hasModuleFilter {
		if module, ok := entry.Data["module"].(string); ok && module != "" {
			if !h.allowedModules[strings.ToLower(module)] {
				entry.Data[filteredKey] = true
				return nil
			}
		}
	}

	return nil
}
