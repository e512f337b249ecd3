package json_types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", date.String())
	assert.Equal(t, time.Monday, date.Weekday())

	// Реестр может прислать полный timestamp
	date, err = ParseDate("2026-03-02T15:04:05+07:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", date.String())

	_, err = ParseDate("02.03.2026")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2026, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-02"`, string(data))

	var date Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-02"`), &date))
	assert.True(t, date.Equal(NewDate(2026, 3, 2)))

	var nullDate Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &nullDate))
	assert.True(t, nullDate.IsZero())
}

func TestDate_AddDays(t *testing.T) {
	date := NewDate(2026, 2, 28)
	assert.Equal(t, "2026-03-01", date.AddDays(1).String())
	assert.Equal(t, "2026-02-27", date.AddDays(-1).String())
}

func TestDate_At(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	at := NewDate(2026, 3, 2).At(NewClockMinute(9, 30), jakarta)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, jakarta), at)

	// nil location трактуется как UTC
	at = NewDate(2026, 3, 2).At(NewClockMinute(9, 30), nil)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), at)
}

func TestClockMinute_JSON(t *testing.T) {
	var m ClockMinute
	require.NoError(t, json.Unmarshal([]byte(`"09:30"`), &m))
	assert.Equal(t, NewClockMinute(9, 30), m)

	require.NoError(t, json.Unmarshal([]byte(`"09:30:45"`), &m))
	assert.Equal(t, NewClockMinute(9, 30), m)

	data, err := json.Marshal(NewClockMinute(17, 0))
	require.NoError(t, err)
	assert.Equal(t, `"17:00"`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`"25:99"`), &m))
	assert.Error(t, json.Unmarshal([]byte(`930`), &m))
}
