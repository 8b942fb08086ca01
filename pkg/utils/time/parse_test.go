package time

import (
	"testing"
	"time"
)

func TestParseFlexibleTime_RFC1123Z(t *testing.T) {
	parsed := ParseFlexibleTime("Tue, 25 Aug 2026 00:00:00 +0200")

	if parsed.IsZero() {
		t.Fatal("ParseFlexibleTime returned zero time")
	}

	if parsed.Day() != 25 || parsed.Month() != time.August || parsed.Year() != 2026 {
		t.Errorf("Parsed date = %v, want 2026-08-25", parsed)
	}
}

func TestParseFlexibleTime_SingleDigitDay(t *testing.T) {
	parsed := ParseFlexibleTime("Mon, 3 Aug 2026 00:00:00 +0200")

	if parsed.IsZero() {
		t.Fatal("ParseFlexibleTime returned zero time")
	}

	if parsed.Day() != 3 {
		t.Errorf("Parsed day = %d, want 3", parsed.Day())
	}
}

func TestParseFlexibleTime_DateOnly(t *testing.T) {
	parsed := ParseFlexibleTime("2026-08-25")

	if parsed.IsZero() {
		t.Fatal("ParseFlexibleTime returned zero time")
	}
}

func TestParseFlexibleTime_TrimsWhitespace(t *testing.T) {
	parsed := ParseFlexibleTime("  2026-08-25  ")

	if parsed.IsZero() {
		t.Error("ParseFlexibleTime should trim whitespace before parsing")
	}
}

func TestParseFlexibleTime_Unparseable(t *testing.T) {
	parsed := ParseFlexibleTime("el martes pasado")

	if !parsed.IsZero() {
		t.Errorf("ParseFlexibleTime = %v, want zero time", parsed)
	}
}

func TestParseFlexibleTime_Empty(t *testing.T) {
	parsed := ParseFlexibleTime("")

	if !parsed.IsZero() {
		t.Errorf("ParseFlexibleTime = %v, want zero time", parsed)
	}
}

func TestParseWithDefault(t *testing.T) {
	fallback := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	parsed := ParseWithDefault("not a date", fallback)
	if !parsed.Equal(fallback) {
		t.Errorf("ParseWithDefault = %v, want fallback %v", parsed, fallback)
	}

	parsed = ParseWithDefault("2026-08-25", fallback)
	if parsed.Equal(fallback) {
		t.Error("ParseWithDefault should prefer the parsed value")
	}
}
