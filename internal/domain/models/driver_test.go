package models

import (
	"errors"
	"testing"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
)

func TestParseWeeklyHours(t *testing.T) {
	w, err := ParseWeeklyHours("7|10|7|7|9|9|8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := WeeklyHours{7, 10, 7, 7, 9, 9, 8}
	if w != want {
		t.Fatalf("got %v, want %v", w, want)
	}
	if got := w.String(); got != "7|10|7|7|9|9|8" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseWeeklyHours_Fractional(t *testing.T) {
	w, err := ParseWeeklyHours(" 7.5 | 8|8|8|8|8|8 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w[0] != 7.5 {
		t.Fatalf("first entry = %v, want 7.5", w[0])
	}
	if got := w.String(); got != "7.5|8|8|8|8|8|8" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseWeeklyHours_Invalid(t *testing.T) {
	cases := []string{
		"",
		"8|8|8|8|8|8",
		"8|8|8|8|8|8|8|8",
		"8|8|x|8|8|8|8",
		"8|8|-1|8|8|8|8",
	}

	for _, in := range cases {
		if _, err := ParseWeeklyHours(in); !errors.Is(err, types.ErrInvalidWeeklyHours) {
			t.Errorf("ParseWeeklyHours(%q) error = %v, want ErrInvalidWeeklyHours", in, err)
		}
	}
}

func TestDefaultWeeklyHoursParses(t *testing.T) {
	w, err := ParseWeeklyHours(DefaultWeeklyHours)
	if err != nil {
		t.Fatalf("default weekly hours must parse: %v", err)
	}
	for i, h := range w {
		if h != 8 {
			t.Fatalf("entry %d = %v, want 8", i, h)
		}
	}
}

func TestDriver_IsFatigued(t *testing.T) {
	tests := []struct {
		name  string
		hours WeeklyHours
		want  bool
	}{
		{"average above eight", WeeklyHours{7, 10, 7, 7, 9, 9, 8}, true},
		{"exactly eight", WeeklyHours{8, 8, 8, 8, 8, 8, 8}, false},
		{"days off pull the mean down", WeeklyHours{12, 12, 12, 12, 0, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Driver{ID: 1, WeeklyHours: tt.hours}
			if got := d.IsFatigued(); got != tt.want {
				t.Fatalf("IsFatigued() = %v, want %v (mean %.3f)", got, tt.want, tt.hours.Average())
			}
		})
	}
}

func TestNormalizeDeliveryTime(t *testing.T) {
	cases := map[string]string{
		"9:30":   "09:30",
		" 0:05 ": "00:05",
		"23:00":  "23:00",
	}
	for in, want := range cases {
		got, err := NormalizeDeliveryTime(in)
		if err != nil || got != want {
			t.Errorf("NormalizeDeliveryTime(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	for _, in := range []string{"banana", "24:00", "9:3", ""} {
		if _, err := NormalizeDeliveryTime(in); !errors.Is(err, types.ErrInvalidClock) {
			t.Errorf("NormalizeDeliveryTime(%q): expected ErrInvalidClock, got %v", in, err)
		}
	}
}
