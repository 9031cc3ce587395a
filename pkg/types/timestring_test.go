package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "08:00", want: "08:00"},
		{name: "valid evening", input: "18:30", want: "18:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "8:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "within hour", start: "10:00", minutes: 30, want: "10:30"},
		{name: "cross hour", start: "10:45", minutes: 30, want: "11:15"},
		{name: "exact hour rollover", start: "09:00", minutes: 60, want: "10:00"},
		{name: "negative delta", start: "10:30", minutes: -45, want: "09:45"},
		{name: "past midnight", start: "23:30", minutes: 60, wantErr: true},
		{name: "before day start", start: "00:10", minutes: -20, wantErr: true},
		{name: "invalid source", start: "25:00", minutes: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:30").IsAfter("18:00"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))
}

func TestTimeString_TotalMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").TotalMinutes())
	assert.Equal(t, 480, TimeString("08:00").TotalMinutes())
	assert.Equal(t, 545, TimeString("09:05").TotalMinutes())
	assert.Equal(t, 1439, TimeString("23:59").TotalMinutes())
}

func TestTimeString_MinutesUntil(t *testing.T) {
	assert.Equal(t, 90, TimeString("09:00").MinutesUntil("10:30"))
	assert.Equal(t, -30, TimeString("10:30").MinutesUntil("10:00"))
	assert.Equal(t, 0, TimeString("12:00").MinutesUntil("12:00"))
}

func TestFromMinutes_RoundTrip(t *testing.T) {
	for _, s := range []TimeString{"00:00", "08:00", "09:15", "13:45", "23:59"} {
		assert.Equal(t, s, FromMinutes(s.TotalMinutes()))
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 11, 3, 14, 27, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:27"), NewTimeString(moment))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("11:45")))
	assert.Equal(t, TimeString("11:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}
