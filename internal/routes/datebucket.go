package routes

import "time"

// DateBucket narrows a search to a calendar window computed against the
// caller's current date.
type DateBucket string

const (
	BucketNone     DateBucket = ""
	BucketToday    DateBucket = "today"
	BucketTomorrow DateBucket = "tomorrow"
	BucketThisWeek DateBucket = "this_week"
	BucketNextWeek DateBucket = "next_week"
)

func (b DateBucket) IsValid() bool {
	switch b {
	case BucketNone, BucketToday, BucketTomorrow, BucketThisWeek, BucketNextWeek:
		return true
	}
	return false
}

// Range resolves the bucket to a half-open [from, to) window. BucketNone
// returns ok=false: no date constraint. Weeks start on Monday.
func (b DateBucket) Range(now time.Time) (from, to time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch b {
	case BucketToday:
		return today, today.AddDate(0, 0, 1), true
	case BucketTomorrow:
		tomorrow := today.AddDate(0, 0, 1)
		return tomorrow, tomorrow.AddDate(0, 0, 1), true
	case BucketThisWeek:
		monday := weekStart(today)
		return monday, monday.AddDate(0, 0, 7), true
	case BucketNextWeek:
		monday := weekStart(today).AddDate(0, 0, 7)
		return monday, monday.AddDate(0, 0, 7), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// weekStart returns the Monday of the week containing day.
func weekStart(day time.Time) time.Time {
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the preceding Monday's week
	}
	return day.AddDate(0, 0, -offset)
}
