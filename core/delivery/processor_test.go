// Package delivery - Test lịch backoff và hạn mức retry của processor.
package delivery

import (
	"testing"
	"time"

	models "food_bridge/core/api/models/mongodb"
)

func TestRetryBackoff_LuyThua(t *testing.T) {
	cases := []struct {
		retryCount int
		expected   time.Duration
	}{
		{0, 1 * time.Minute},
		{1, 2 * time.Minute},
		{2, 4 * time.Minute},
		{3, 8 * time.Minute},
		{4, 16 * time.Minute},
	}

	for _, c := range cases {
		got := RetryBackoff(c.retryCount)
		if got != c.expected {
			t.Errorf("RetryBackoff(%d) phải là %v, got %v", c.retryCount, c.expected, got)
		}
	}
}

func TestMaxRetriesFor(t *testing.T) {
	p := &Processor{maxRetriesFallback: 5}

	// Hạn mức ghi trên item thắng cấu hình server
	item := &models.DeliveryQueueItem{MaxRetries: 2}
	if got := p.maxRetriesFor(item); got != 2 {
		t.Errorf("hạn mức trên item phải thắng, got %d", got)
	}

	// Item không ghi hạn mức thì dùng cấu hình server
	item = &models.DeliveryQueueItem{}
	if got := p.maxRetriesFor(item); got != 5 {
		t.Errorf("phải fallback về cấu hình server, got %d", got)
	}

	// Cả hai đều thiếu thì mặc định 3
	p = &Processor{}
	if got := p.maxRetriesFor(item); got != 3 {
		t.Errorf("mặc định phải là 3, got %d", got)
	}
}
