package roster

import "testing"

func TestSlotDurationHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"07:00", "19:00", 12.0},
		{"19:00", "07:00", 12.0}, // vira a meia-noite
		{"00:00", "00:00", 24.0}, // diferença zero conta como dia inteiro
		{"22:00", "06:30", 8.5},
		{"08:15", "12:00", 3.75},
		{"23:30", "00:15", 0.75},
	}
	for _, tc := range cases {
		got, err := SlotDurationHours(tc.start, tc.end)
		if err != nil {
			t.Errorf("SlotDurationHours(%q, %q): erro inesperado %v", tc.start, tc.end, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SlotDurationHours(%q, %q) = %v, esperado %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestSlotDurationHours_Invalid(t *testing.T) {
	for _, s := range []string{"", "25:00", "12:60", "1200", "ab:cd"} {
		if _, err := SlotDurationHours(s, "07:00"); err == nil {
			t.Errorf("horário %q deveria ser rejeitado", s)
		}
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{12.0, "12"},
		{8.5, "8.5"},
		{3.75, "3.8"},  // arredonda a 1 casa
		{36.04, "36"},  // arredonda para inteiro
		{0, "0"},
	}
	for _, tc := range cases {
		if got := FormatHours(tc.hours); got != tc.want {
			t.Errorf("FormatHours(%v) = %q, esperado %q", tc.hours, got, tc.want)
		}
	}
}
