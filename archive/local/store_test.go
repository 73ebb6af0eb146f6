package local

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/atmoshq/weatherdesk/archive"
)

func setupTestStore(t *testing.T) *Store {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	store, err := NewStore(db)
	require.NoError(t, err)
	return store
}

func ptr(v float64) *float64 {
	return &v
}

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestStore_QueryRangeAscending(t *testing.T) {
	store := setupTestStore(t)

	// Insert out of order; the query must come back ascending.
	err := store.Insert(
		archive.ObservationRow{StationID: "411700-99999", Date: day(2025, time.January, 3), TempMean: ptr(19.1)},
		archive.ObservationRow{StationID: "411700-99999", Date: day(2025, time.January, 1), TempMean: ptr(17.4), Precip: ptr(0.8)},
		archive.ObservationRow{StationID: "411700-99999", Date: day(2025, time.January, 2), TempMean: ptr(18.0), WindSpeed: ptr(14.2)},
		archive.ObservationRow{StationID: "405820-99999", Date: day(2025, time.January, 2), TempMean: ptr(12.0)},
	)
	require.NoError(t, err)

	r, err := archive.NewDateRange(day(2025, time.January, 1), day(2025, time.January, 31))
	require.NoError(t, err)

	rows, err := store.Query(context.Background(), "411700-99999", r)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, day(2025, time.January, 1), rows[0].Date)
	assert.Equal(t, day(2025, time.January, 2), rows[1].Date)
	assert.Equal(t, day(2025, time.January, 3), rows[2].Date)

	// Nullable fields survive the round trip.
	require.NotNil(t, rows[0].Precip)
	assert.Equal(t, 0.8, *rows[0].Precip)
	assert.Nil(t, rows[0].WindSpeed)
	require.NotNil(t, rows[1].WindSpeed)
	assert.Equal(t, 14.2, *rows[1].WindSpeed)
}

func TestStore_QueryBounds(t *testing.T) {
	store := setupTestStore(t)

	err := store.Insert(
		archive.ObservationRow{StationID: "s", Date: day(2024, time.December, 31), TempMean: ptr(1)},
		archive.ObservationRow{StationID: "s", Date: day(2025, time.January, 1), TempMean: ptr(2)},
		archive.ObservationRow{StationID: "s", Date: day(2025, time.January, 31), TempMean: ptr(3)},
		archive.ObservationRow{StationID: "s", Date: day(2025, time.February, 1), TempMean: ptr(4)},
	)
	require.NoError(t, err)

	r, err := archive.NewDateRange(day(2025, time.January, 1), day(2025, time.January, 31))
	require.NoError(t, err)

	rows, err := store.Query(context.Background(), "s", r)
	require.NoError(t, err)
	// BETWEEN is inclusive on both ends.
	require.Len(t, rows, 2)
	assert.Equal(t, day(2025, time.January, 1), rows[0].Date)
	assert.Equal(t, day(2025, time.January, 31), rows[1].Date)
}

func TestStore_QueryUnknownStation(t *testing.T) {
	store := setupTestStore(t)

	r, err := archive.NewDateRange(day(2025, time.January, 1), day(2025, time.January, 2))
	require.NoError(t, err)

	rows, err := store.Query(context.Background(), "missing", r)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_InsertReplacesStationDay(t *testing.T) {
	store := setupTestStore(t)

	err := store.Insert(archive.ObservationRow{StationID: "s", Date: day(2025, time.January, 1), TempMean: ptr(10)})
	require.NoError(t, err)
	err = store.Insert(archive.ObservationRow{StationID: "s", Date: day(2025, time.January, 1), TempMean: ptr(12)})
	require.NoError(t, err)

	r, err := archive.NewDateRange(day(2025, time.January, 1), day(2025, time.January, 1))
	require.NoError(t, err)

	rows, err := store.Query(context.Background(), "s", r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].TempMean)
	assert.Equal(t, 12.0, *rows[0].TempMean)
}
