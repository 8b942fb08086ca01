// ABOUTME: Time parsing utilities for flexible date parsing
// ABOUTME: Handles the pubDate shapes seen in the dictionary's RSS feed

package time

import (
	"strings"
	"time"
)

// Formats seen in the word of the day feed, most common first
var timeFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02",
}

// ParseFlexibleTime attempts to parse a time string using various formats,
// returning the zero time when none matches
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// ParseWithDefault attempts to parse a time string, returning a default when
// parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}
