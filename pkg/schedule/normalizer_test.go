package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D3rkrox/Church/pkg/catalog"
)

func TestNormalizer_SkipsUnusableRecords(t *testing.T) {
	normalizer := NewNormalizer(testFallbackZone)

	testCases := []struct {
		name   string
		record catalog.EventRecord
	}{
		{
			name:   "missing title",
			record: eventRecord("evt-1", "", catalog.CategoryRegular, "2025-06-08T14:00:00Z", ""),
		},
		{
			name:   "missing start",
			record: eventRecord("evt-2", "Morning Worship", catalog.CategoryRegular, "", ""),
		},
		{
			name: "unparseable start",
			record: catalog.EventRecord{
				EventId:  "evt-3",
				Title:    "Morning Worship",
				StartRaw: "not-a-date",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := normalizer.Normalize(tc.record)
			assert.False(t, ok)
		})
	}
}

func TestNormalizer_AllDayTruncatesToDate(t *testing.T) {
	normalizer := NewNormalizer(testFallbackZone)

	record := eventRecord("evt-1", "Homecoming", catalog.CategorySpecialSingle,
		"2025-06-08T05:00:00Z", "2025-06-09T05:00:00Z")
	record.AllDay = true
	record.TimeZone = "America/New_York"

	occ, ok := normalizer.Normalize(record)
	assert.True(t, ok)
	assert.Equal(t, "2025-06-08", occ.Start)
	assert.Equal(t, "2025-06-09", occ.End)
	assert.True(t, occ.AllDay)
	// All-day occurrences render in the viewer's local grid.
	assert.Empty(t, occ.TimeZone)
}

func TestNormalizer_TimedEvent(t *testing.T) {
	normalizer := NewNormalizer(testFallbackZone)

	testCases := []struct {
		name         string
		timeZone     string
		wantTimeZone string
	}{
		{name: "record zone preserved", timeZone: "America/Chicago", wantTimeZone: "America/Chicago"},
		{name: "missing zone falls back", timeZone: "", wantTimeZone: testFallbackZone},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := eventRecord("evt-1", "Morning Worship", catalog.CategoryRegular,
				"2025-06-08T14:00:00Z", "")
			record.TimeZone = tc.timeZone

			occ, ok := normalizer.Normalize(record)
			assert.True(t, ok)
			assert.Equal(t, "Morning Worship", occ.Title)
			assert.Equal(t, "2025-06-08T14:00:00Z", occ.Start)
			assert.False(t, occ.AllDay)
			assert.Equal(t, tc.wantTimeZone, occ.TimeZone)
			assert.False(t, occ.IsPlaceholder)
		})
	}
}

func TestNormalizer_StyleResolution(t *testing.T) {
	normalizer := NewNormalizer(testFallbackZone)

	record := eventRecord("evt-1", "Evening Singing", catalog.CategorySpecialSingle,
		"2025-06-08T23:00:00Z", "")
	record.EventType = "  Singing "

	occ, ok := normalizer.Normalize(record)
	assert.True(t, ok)
	assert.Equal(t, "#f6bf26", occ.BackgroundColor)
	assert.Equal(t, "#000000", occ.TextColor)
	assert.Equal(t, "singing", occ.ClassName)
}

func TestCssClassForEventType(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Revival", want: "revival"},
		{name: "whitespace runs", input: "  Fellowship   Meal ", want: "fellowship-meal"},
		{name: "punctuation stripped", input: "Youth Rally! (2025)", want: "youth-rally-2025"},
		{name: "empty falls back", input: "", want: "default"},
		{name: "all invalid falls back", input: "!!!", want: "default"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cssClassForEventType(tc.input))
		})
	}
}

func TestStyleForEventType_UnknownUsesDefault(t *testing.T) {
	style := styleForEventType("Something Never Mapped")
	assert.Equal(t, defaultEventStyle, style)
}
