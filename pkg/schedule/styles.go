package schedule

import "strings"

type eventStyle struct {
	BackgroundColor string
	TextColor       string
}

// Static event-type palette. Keys are lowercased, trimmed type labels;
// anything unmapped gets the default entry.
var eventTypeStyles = map[string]eventStyle{
	"revival":          {BackgroundColor: "#8e24aa", TextColor: "#ffffff"},
	"singing":          {BackgroundColor: "#f6bf26", TextColor: "#000000"},
	"conference":       {BackgroundColor: "#039be5", TextColor: "#ffffff"},
	"fellowship meal":  {BackgroundColor: "#33b679", TextColor: "#ffffff"},
	"youth service":    {BackgroundColor: "#e67c73", TextColor: "#ffffff"},
	"sunday morning":   {BackgroundColor: "#3f51b5", TextColor: "#ffffff"},
	"sunday evening":   {BackgroundColor: "#7986cb", TextColor: "#ffffff"},
	"midweek service":  {BackgroundColor: "#616161", TextColor: "#ffffff"},
	"homecoming":       {BackgroundColor: "#0b8043", TextColor: "#ffffff"},
	"communion":        {BackgroundColor: "#795548", TextColor: "#ffffff"},
	"business meeting": {BackgroundColor: "#a79b8e", TextColor: "#000000"},
}

var defaultEventStyle = eventStyle{BackgroundColor: "#4285f4", TextColor: "#ffffff"}

func styleForEventType(eventType string) eventStyle {
	key := strings.ToLower(strings.TrimSpace(eventType))
	if style, ok := eventTypeStyles[key]; ok {
		return style
	}
	return defaultEventStyle
}

// cssClassForEventType derives a CSS-safe class name from a type label:
// lowercase, trim, whitespace runs become single hyphens, and anything
// outside [a-z0-9-] is dropped. An empty result falls back to "default".
func cssClassForEventType(eventType string) string {
	normalized := strings.ToLower(strings.TrimSpace(eventType))
	normalized = strings.Join(strings.Fields(normalized), "-")

	var b strings.Builder
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "default"
	}
	return b.String()
}
