package routes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday, mid-afternoon
var wednesday = time.Date(2025, 9, 17, 15, 30, 0, 0, time.UTC)

func TestDateBucket_Today(t *testing.T) {
	from, to, ok := BucketToday.Range(wednesday)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC), to)
}

func TestDateBucket_Tomorrow(t *testing.T) {
	from, to, ok := BucketTomorrow.Range(wednesday)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 9, 19, 0, 0, 0, 0, time.UTC), to)
}

func TestDateBucket_ThisWeek_StartsMonday(t *testing.T) {
	from, to, ok := BucketThisWeek.Range(wednesday)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), to)
}

func TestDateBucket_NextWeek(t *testing.T) {
	from, to, ok := BucketNextWeek.Range(wednesday)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC), to)
}

func TestDateBucket_SundayBelongsToCurrentWeek(t *testing.T) {
	// Sunday, 2025-09-21: its week started Monday 2025-09-15
	sunday := time.Date(2025, 9, 21, 10, 0, 0, 0, time.UTC)

	from, to, ok := BucketThisWeek.Range(sunday)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), to)
}

func TestDateBucket_NoneHasNoWindow(t *testing.T) {
	_, _, ok := BucketNone.Range(wednesday)
	assert.False(t, ok)
}

func TestDateBucket_IsValid(t *testing.T) {
	assert.True(t, BucketNone.IsValid())
	assert.True(t, BucketToday.IsValid())
	assert.True(t, BucketTomorrow.IsValid())
	assert.True(t, BucketThisWeek.IsValid())
	assert.True(t, BucketNextWeek.IsValid())
	assert.False(t, DateBucket("yesterday").IsValid())
}
