// Package models - Test đọc khối lượng của dòng hàng quyên góp.
package models

import (
	"testing"
)

func TestDonationItemKgValue(t *testing.T) {
	cases := []struct {
		name     string
		kg       interface{}
		expected float64
	}{
		{"float64", 3.5, 3.5},
		{"int", 10, 10},
		{"int64", int64(7), 7},
		{"chuỗi số", "4.25", 4.25},
		{"chuỗi số nguyên", "2", 2},
		{"chuỗi hỏng", "n/a", 0},
		{"nil", nil, 0},
		{"kiểu lạ", []string{"x"}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			item := DonationItem{Kg: c.kg}
			if got := item.KgValue(); got != c.expected {
				t.Errorf("KgValue(%v) phải là %v, got %v", c.kg, c.expected, got)
			}
		})
	}
}
