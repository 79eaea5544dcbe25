// Package utility - Test cache in-process với TTL.
package utility

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("key", "value")

	value, found := cache.Get("key")
	if !found {
		t.Fatal("entry vừa set phải tìm thấy")
	}
	if value != "value" {
		t.Errorf("giá trị phải là 'value', got %v", value)
	}

	if _, found := cache.Get("missing"); found {
		t.Error("key không tồn tại phải là miss")
	}
}

func TestCache_HetHanLaMiss(t *testing.T) {
	cache := NewCache(10*time.Millisecond, time.Minute)
	defer cache.Stop()

	cache.Set("key", "value")
	time.Sleep(30 * time.Millisecond)

	if _, found := cache.Get("key"); found {
		t.Error("entry hết hạn phải là miss kể cả khi chưa tới chu kỳ dọn")
	}
}

func TestCache_Delete(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("token", "account")
	cache.Delete("token")

	if _, found := cache.Get("token"); found {
		t.Error("entry đã xóa phải là miss")
	}
}

func TestCache_GhiDe(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("key", "cũ")
	cache.Set("key", "mới")

	value, _ := cache.Get("key")
	if value != "mới" {
		t.Errorf("set lại phải ghi đè, got %v", value)
	}
}
