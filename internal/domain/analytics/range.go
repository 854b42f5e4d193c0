package analytics

import (
	"time"

	"printdesk/internal/core/apperror"
)

const dateLayout = "2006-01-02"

// ResolveRange parses optional ISO-8601 calendar dates into an inclusive
// UTC day range. An absent start defaults to the first day of the current
// month; an absent end defaults to today. The reference time is injected so
// results are reproducible.
func ResolveRange(startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	today := truncateToDay(now.UTC())

	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	if startStr != "" {
		parsed, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewInvalidDateRange("start date must be a YYYY-MM-DD calendar date").
				WithDetail("startDate", startStr).WithCause(err)
		}
		start = parsed
	}

	end := today
	if endStr != "" {
		parsed, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewInvalidDateRange("end date must be a YYYY-MM-DD calendar date").
				WithDetail("endDate", endStr).WithCause(err)
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, apperror.NewInvalidDateRange("end date must not be before start date").
			WithDetail("startDate", start.Format(dateLayout)).
			WithDetail("endDate", end.Format(dateLayout))
	}

	return start, end, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
