package agenda

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/types"
)

func testAppointment(professionalID uuid.UUID, start, end string, status domain.AppointmentStatus) *domain.Appointment {
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	parse := func(hm string) time.Time {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			panic(err)
		}
		return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}

	return &domain.Appointment{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: professionalID,
		StartTime:      parse(start),
		EndTime:        parse(end),
		Status:         status,
	}
}

func TestTimeWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		window  TimeWindow
		wantErr bool
	}{
		{
			name:   "default window is valid",
			window: DefaultWindow(),
		},
		{
			name:   "half hour rows divide the window",
			window: TimeWindow{DayStart: "09:00", DayEnd: "13:00", SlotMinutes: 30},
		},
		{
			name:    "start after end",
			window:  TimeWindow{DayStart: "18:00", DayEnd: "08:00", SlotMinutes: 60},
			wantErr: true,
		},
		{
			name:    "start equals end",
			window:  TimeWindow{DayStart: "08:00", DayEnd: "08:00", SlotMinutes: 60},
			wantErr: true,
		},
		{
			name:    "zero slot size",
			window:  TimeWindow{DayStart: "08:00", DayEnd: "18:00", SlotMinutes: 0},
			wantErr: true,
		},
		{
			name:    "slot size does not divide the window",
			window:  TimeWindow{DayStart: "08:00", DayEnd: "18:00", SlotMinutes: 45},
			wantErr: true,
		},
		{
			name:    "malformed bound",
			window:  TimeWindow{DayStart: "8am", DayEnd: "18:00", SlotMinutes: 60},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWindow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeWindowRowStarts(t *testing.T) {
	rows := DefaultWindow().RowStarts()

	require.Len(t, rows, 10)
	assert.Equal(t, types.TimeString("08:00"), rows[0])
	assert.Equal(t, types.TimeString("09:00"), rows[1])
	assert.Equal(t, types.TimeString("17:00"), rows[9])
}

func TestClassifySlot(t *testing.T) {
	professionalID := uuid.New()
	window := DefaultWindow()

	t.Run("empty row", func(t *testing.T) {
		occ := ClassifySlot("10:00", professionalID, nil, window.SlotMinutes)

		assert.Equal(t, OccupancyEmpty, occ.Kind)
		assert.Nil(t, occ.Appointment)
		assert.False(t, occ.IsStartRow)
		assert.Equal(t, 0, occ.OccupiedMinutes)
		assert.Equal(t, window.SlotMinutes, occ.FreeMinutes)
	})

	t.Run("45 minute appointment leaves a 15 minute tail", func(t *testing.T) {
		appts := []*domain.Appointment{
			testAppointment(professionalID, "09:00", "09:45", domain.StatusScheduled),
		}

		occ := ClassifySlot("09:00", professionalID, appts, window.SlotMinutes)
		assert.Equal(t, OccupancyPartial, occ.Kind)
		assert.True(t, occ.IsStartRow)
		assert.Equal(t, 45, occ.OccupiedMinutes)
		assert.Equal(t, 15, occ.FreeMinutes)

		next := ClassifySlot("10:00", professionalID, appts, window.SlotMinutes)
		assert.Equal(t, OccupancyEmpty, next.Kind)
	})

	t.Run("90 minute appointment spans two rows", func(t *testing.T) {
		appts := []*domain.Appointment{
			testAppointment(professionalID, "09:00", "10:30", domain.StatusConfirmed),
		}

		first := ClassifySlot("09:00", professionalID, appts, window.SlotMinutes)
		assert.Equal(t, OccupancyFull, first.Kind)
		assert.True(t, first.IsStartRow)
		assert.Equal(t, 60, first.OccupiedMinutes)
		assert.Equal(t, 0, first.FreeMinutes)

		second := ClassifySlot("10:00", professionalID, appts, window.SlotMinutes)
		assert.Equal(t, OccupancyPartial, second.Kind)
		assert.False(t, second.IsStartRow)
		assert.Equal(t, 30, second.OccupiedMinutes)
		assert.Equal(t, 30, second.FreeMinutes)
	})

	t.Run("boundary touch does not occupy the next row", func(t *testing.T) {
		appts := []*domain.Appointment{
			testAppointment(professionalID, "09:00", "10:00", domain.StatusScheduled),
		}

		occ := ClassifySlot("10:00", professionalID, appts, window.SlotMinutes)
		assert.Equal(t, OccupancyEmpty, occ.Kind)

		prev := ClassifySlot("09:00", professionalID, appts, window.SlotMinutes)
		assert.Equal(t, OccupancyFull, prev.Kind)
	})

	t.Run("cancelled and no-show appointments are invisible", func(t *testing.T) {
		appts := []*domain.Appointment{
			testAppointment(professionalID, "09:00", "10:00", domain.StatusCancelled),
			testAppointment(professionalID, "09:15", "09:45", domain.StatusNoShow),
		}

		occ := ClassifySlot("09:00", professionalID, appts, window.SlotMinutes)
		assert.Equal(t, OccupancyEmpty, occ.Kind)
	})

	t.Run("other professional's appointment is ignored", func(t *testing.T) {
		appts := []*domain.Appointment{
			testAppointment(uuid.New(), "09:00", "10:00", domain.StatusScheduled),
		}

		occ := ClassifySlot("09:00", professionalID, appts, window.SlotMinutes)
		assert.Equal(t, OccupancyEmpty, occ.Kind)
	})

	t.Run("appointment starting mid row", func(t *testing.T) {
		appts := []*domain.Appointment{
			testAppointment(professionalID, "09:30", "10:00", domain.StatusScheduled),
		}

		occ := ClassifySlot("09:00", professionalID, appts, window.SlotMinutes)
		assert.Equal(t, OccupancyPartial, occ.Kind)
		assert.True(t, occ.IsStartRow)
		assert.Equal(t, 30, occ.OccupiedMinutes)
		assert.Equal(t, 30, occ.FreeMinutes)
	})

	t.Run("occupied and free minutes partition every covered row", func(t *testing.T) {
		appts := []*domain.Appointment{
			testAppointment(professionalID, "08:20", "11:10", domain.StatusScheduled),
		}

		for _, rowStart := range window.RowStarts() {
			occ := ClassifySlot(rowStart, professionalID, appts, window.SlotMinutes)
			assert.Equal(t, window.SlotMinutes, occ.OccupiedMinutes+occ.FreeMinutes, "row %s", rowStart)
		}
	})
}

func TestBuildColumn(t *testing.T) {
	professionalID := uuid.New()
	window := DefaultWindow()

	appts := []*domain.Appointment{
		testAppointment(professionalID, "09:00", "10:30", domain.StatusScheduled),
		testAppointment(professionalID, "14:00", "14:45", domain.StatusConfirmed),
	}

	column := BuildColumn(window, professionalID, appts)
	require.Len(t, column, 10)

	assert.Equal(t, OccupancyEmpty, column[0].Kind)    // 08:00
	assert.Equal(t, OccupancyFull, column[1].Kind)     // 09:00
	assert.Equal(t, OccupancyPartial, column[2].Kind)  // 10:00
	assert.Equal(t, OccupancyEmpty, column[3].Kind)    // 11:00
	assert.Equal(t, OccupancyPartial, column[6].Kind)  // 14:00
	assert.True(t, column[6].IsStartRow)
	assert.Equal(t, OccupancyEmpty, column[9].Kind) // 17:00
}

func TestComputeBlockGeometry(t *testing.T) {
	professionalID := uuid.New()

	tests := []struct {
		name       string
		start, end string
		wantTop    int
		wantHeight int
	}{
		{name: "first row", start: "08:00", end: "09:00", wantTop: 0, wantHeight: 60},
		{name: "mid morning", start: "09:00", end: "09:45", wantTop: 60, wantHeight: 45},
		{name: "offset start", start: "10:15", end: "11:45", wantTop: 135, wantHeight: 90},
		{name: "last row", start: "17:00", end: "18:00", wantTop: 540, wantHeight: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := testAppointment(professionalID, tt.start, tt.end, domain.StatusScheduled)

			geom := ComputeBlockGeometry(appt, "08:00")
			assert.Equal(t, tt.wantTop, geom.TopOffsetMinutes)
			assert.Equal(t, tt.wantHeight, geom.HeightMinutes)
		})
	}
}

func TestMinutesSinceWindowStartRoundTrip(t *testing.T) {
	for _, tm := range []types.TimeString{"08:00", "08:15", "09:52", "13:30", "17:45"} {
		offset := MinutesSinceWindowStart(tm, "08:00")
		assert.Equal(t, tm, MinutesToTime(offset, "08:00"))
	}

	assert.Equal(t, 112, MinutesSinceWindowStart("09:52", "08:00"))
	assert.Equal(t, types.TimeString("09:52"), MinutesToTime(112, "08:00"))
}

func TestResolveClickTime(t *testing.T) {
	window := DefaultWindow()

	tests := []struct {
		name          string
		offsetMinutes int
		want          types.TimeString
		wantErr       bool
	}{
		{name: "exact row start", offsetMinutes: 60, want: "09:00"},
		{name: "snaps down to quarter", offsetMinutes: 65, want: "09:00"},
		{name: "snaps up to quarter", offsetMinutes: 70, want: "09:15"},
		{name: "minute 52 rolls over to the next hour", offsetMinutes: 112, want: "10:00"},
		{name: "late click inside last hour", offsetMinutes: 590, want: "17:45"},
		{name: "roll over past the window end", offsetMinutes: 592, wantErr: true},
		{name: "offset past the window", offsetMinutes: 660, wantErr: true},
		{name: "negative offset", offsetMinutes: -30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveClickTime(tt.offsetMinutes, window)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutsideWindow)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
