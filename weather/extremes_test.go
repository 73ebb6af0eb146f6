package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atmoshq/weatherdesk/archive"
	"github.com/atmoshq/weatherdesk/errs"
)

func TestHottestDay(t *testing.T) {
	rows := []archive.ObservationRow{
		{StationID: "s", Date: day(2024, time.June, 1), TempMax: ptr(38.2)},
		{StationID: "s", Date: day(2024, time.July, 14), TempMax: ptr(44.6)},
		{StationID: "s", Date: day(2024, time.August, 2), TempMax: ptr(41.0)},
	}

	extreme, err := HottestDay("s", 2024, rows)
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.July, 14), extreme.Date)
	assert.Equal(t, 44.6, extreme.TempMaxC)
	assert.Equal(t, 2024, extreme.Year)
}

func TestHottestDay_TieTakesEarliestDate(t *testing.T) {
	rows := []archive.ObservationRow{
		{StationID: "s", Date: day(2024, time.August, 20), TempMax: ptr(44.6)},
		{StationID: "s", Date: day(2024, time.July, 14), TempMax: ptr(44.6)},
	}

	extreme, err := HottestDay("s", 2024, rows)
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.July, 14), extreme.Date)

	// Same result regardless of row order.
	rows[0], rows[1] = rows[1], rows[0]
	again, err := HottestDay("s", 2024, rows)
	require.NoError(t, err)
	assert.Equal(t, extreme.Date, again.Date)
}

func TestHottestDay_SkipsMissingAndForeignYears(t *testing.T) {
	rows := []archive.ObservationRow{
		{StationID: "s", Date: day(2024, time.June, 1), TempMax: nil},
		{StationID: "s", Date: day(2023, time.July, 1), TempMax: ptr(50)},
		{StationID: "s", Date: day(2024, time.July, 1), TempMax: ptr(30)},
	}

	extreme, err := HottestDay("s", 2024, rows)
	require.NoError(t, err)
	assert.Equal(t, 30.0, extreme.TempMaxC)
}

func TestHottestDay_NoUsableRows(t *testing.T) {
	_, err := HottestDay("s", 2024, nil)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.NoDataInRange))

	rows := []archive.ObservationRow{
		{StationID: "s", Date: day(2024, time.June, 1), TempMax: nil, TempMean: ptr(20)},
	}
	_, err = HottestDay("s", 2024, rows)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.NoDataInRange))
}
