package weather

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atmoshq/weatherdesk/archive"
	"github.com/atmoshq/weatherdesk/errs"
)

func ptr(v float64) *float64 {
	return &v
}

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func mustRange(t *testing.T, start, end civil.Date) archive.DateRange {
	r, err := archive.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestSummarize(t *testing.T) {
	r := mustRange(t, day(2025, time.January, 1), day(2025, time.January, 5))
	rows := []archive.ObservationRow{
		{StationID: "s", Date: day(2025, time.January, 1), TempMean: ptr(10), Precip: ptr(2.5), WindSpeed: ptr(12)},
		{StationID: "s", Date: day(2025, time.January, 2), TempMean: ptr(14), Precip: nil, WindSpeed: nil},
		{StationID: "s", Date: day(2025, time.January, 4), TempMean: ptr(12), Precip: ptr(1.5), WindSpeed: ptr(8)},
	}

	s, err := Summarize("s", rows, r)
	require.NoError(t, err)

	assert.Equal(t, 10.0, s.TempMinC)
	assert.Equal(t, 14.0, s.TempMaxC)
	assert.InDelta(t, 12.0, s.TempMeanC, 1e-9)
	// Missing precipitation counts as zero, not as a skipped sample.
	assert.InDelta(t, 4.0, s.PrecipTotalMM, 1e-9)
	// Missing wind is skipped, not zero-substituted.
	require.NotNil(t, s.WindMeanKMH)
	assert.InDelta(t, 10.0, *s.WindMeanKMH, 1e-9)
	assert.Equal(t, 3, s.ObservedDays)
	assert.InDelta(t, 3.0/5.0, s.Coverage, 1e-9)
}

func TestSummarize_Invariant(t *testing.T) {
	r := mustRange(t, day(2025, time.June, 1), day(2025, time.June, 30))
	temps := []float64{31.4, 29.9, 35.2, 28.0, 33.3, 30.1}
	rows := make([]archive.ObservationRow, 0, len(temps))
	for i, temp := range temps {
		rows = append(rows, archive.ObservationRow{
			StationID: "s",
			Date:      day(2025, time.June, i+1),
			TempMean:  ptr(temp),
		})
	}

	s, err := Summarize("s", rows, r)
	require.NoError(t, err)
	assert.LessOrEqual(t, s.TempMinC, s.TempMeanC)
	assert.LessOrEqual(t, s.TempMeanC, s.TempMaxC)
	assert.Greater(t, s.Coverage, 0.0)
}

func TestSummarize_NoUsableRows(t *testing.T) {
	r := mustRange(t, day(2025, time.January, 1), day(2025, time.January, 3))

	_, err := Summarize("s", nil, r)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.NoDataInRange))

	// Rows with precipitation but no temperature are not usable either.
	rows := []archive.ObservationRow{
		{StationID: "s", Date: day(2025, time.January, 2), Precip: ptr(3)},
	}
	_, err = Summarize("s", rows, r)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.NoDataInRange))
}

func TestSummarize_LowCoverageIsNotAnError(t *testing.T) {
	r := mustRange(t, day(2025, time.January, 1), day(2025, time.January, 31))
	rows := []archive.ObservationRow{
		{StationID: "s", Date: day(2025, time.January, 17), TempMean: ptr(40)},
	}

	s, err := Summarize("s", rows, r)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/31.0, s.Coverage, 1e-9)
	assert.Nil(t, s.WindMeanKMH)
}

func TestSummarize_IgnoresRowsOutsideRange(t *testing.T) {
	r := mustRange(t, day(2025, time.January, 1), day(2025, time.January, 2))
	rows := []archive.ObservationRow{
		{StationID: "s", Date: day(2025, time.January, 1), TempMean: ptr(10)},
		{StationID: "s", Date: day(2025, time.February, 1), TempMean: ptr(99)},
	}

	s, err := Summarize("s", rows, r)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.TempMaxC)
	assert.Equal(t, 1, s.ObservedDays)
}
