// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"iso date", "2024-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"slash date", "2024/06/15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"compact date", "20240615", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"iso with time", "2024-06-15 09:30", time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC), false},
		{"slash with time", "2024/06/15 09:30", time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC), false},
		{"compact with time", "20240615 09:30", time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC), false},
		{"year-month", "2024-06", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"bare year", "2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},

		{"empty", "", time.Time{}, true},
		{"words", "June 15th 2024", time.Time{}, true},
		{"reversed", "15-06-2024", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandCoarseEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"bare year", "2024", time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)},
		{"january", "2024-01", time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)},
		{"february leap year", "2024-02", time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)},
		{"february non-leap", "2023-02", time.Date(2023, 2, 28, 23, 59, 0, 0, time.UTC)},
		{"thirty-day month", "2024-04", time.Date(2024, 4, 30, 23, 59, 0, 0, time.UTC)},
		{"full date left alone", "2024-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			got := expandCoarseEnd(tt.input, parsed)
			if !got.Equal(tt.want) {
				t.Errorf("expandCoarseEnd(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
