package service

import (
	"sort"
	"time"
)

// Pure streak arithmetic over calendar dates. No I/O in this file.

// DateOnly drops time-of-day and normalizes to a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentStreak counts consecutive calendar days ending at today or
// yesterday. An older latest date means the chain is broken and the
// result is 0 regardless of historical runs.
func CurrentStreak(dates []time.Time, today time.Time) int {
	days := normalizeDates(dates)
	if len(days) == 0 {
		return 0
	}
	today = DateOnly(today)
	last := days[len(days)-1]
	if last.Before(today.AddDate(0, 0, -1)) {
		return 0
	}
	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if !days[i-1].Equal(days[i].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the length of the longest consecutive-day run.
func LongestStreak(dates []time.Time) int {
	days := normalizeDates(dates)
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// normalizeDates truncates to calendar days, drops duplicates and sorts
// ascending. The store guarantees uniqueness per day, but a duplicate in
// the input must not count a day twice.
func normalizeDates(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := DateOnly(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
