// Package models - Test kiểm tra ngày nghỉ của cửa hàng.
package models

import (
	"testing"
)

func TestStoreIsUnavailableOn(t *testing.T) {
	store := &Store{UnavailableDates: []string{"2025-03-15", "2025-04-01"}}

	if !store.IsUnavailableOn("2025-03-15") {
		t.Error("ngày nằm trong danh sách nghỉ phải trả true")
	}
	if store.IsUnavailableOn("2025-03-16") {
		t.Error("ngày không nằm trong danh sách phải trả false")
	}

	empty := &Store{}
	if empty.IsUnavailableOn("2025-03-15") {
		t.Error("cửa hàng không khai ngày nghỉ thì mọi ngày đều nhận")
	}
}
