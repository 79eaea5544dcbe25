package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ để không block request handling.
// Entries được buffer vào channel và ghi ra các writers trong một
// goroutine riêng; channel đầy thì entry bị bỏ qua thay vì block.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHook tạo async hook ghi ra danh sách writers.
// bufferSize <= 0 sẽ dùng mặc định 1000 entries.
func NewAsyncHook(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không bao giờ block.
// Entry bị FilterHook đánh dấu sẽ bị bỏ qua tại đây.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	if filtered, ok := entry.Data[filteredKey].(bool); ok && filtered {
		return nil
	}

	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng: ghi thẳng, bỏ qua lỗi ghi
		data, err := h.format(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy: bỏ entry để không block.
		// Không log warning ở đây vì sẽ tạo vòng lặp.
	}

	return nil
}

func (h *AsyncHook) format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		data, err := h.format(entry)
		if err != nil {
			continue
		}

		// Một writer lỗi không chặn các writer còn lại
		for _, writer := range h.writers {
			if _, werr := writer.Write(data); werr != nil {
				continue
			}
		}
	}
}

// Close đóng hook và đợi các entries còn lại được ghi xong.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
