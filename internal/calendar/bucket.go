package calendar

import (
	"sort"
	"strconv"
	"strings"
)

// Bucket groups events by their date string key. Within a day, events are
// sorted by time of day ascending, ties broken by client name. Events
// without a time sort first.
func Bucket(events []Event) map[string][]Event {
	buckets := make(map[string][]Event)
	for _, event := range events {
		buckets[event.Date] = append(buckets[event.Date], event)
	}

	for _, day := range buckets {
		sort.SliceStable(day, func(i, j int) bool {
			a, b := minutesOfDay(day[i].Time), minutesOfDay(day[j].Time)
			if a != b {
				return a < b
			}
			return day[i].ClientName < day[j].ClientName
		})
	}

	return buckets
}

// minutesOfDay parses an HH:mm string into minutes since midnight.
// A missing or malformed time counts as 0.
func minutesOfDay(s string) int {
	hour, minute, ok := strings.Cut(s, ":")
	if !ok {
		return 0
	}

	h, err := strconv.Atoi(strings.TrimSpace(hour))
	if err != nil {
		return 0
	}

	m, err := strconv.Atoi(strings.TrimSpace(minute))
	if err != nil {
		return 0
	}

	return h*60 + m
}
