// Package local is a file-backed archive adapter over sqlite, useful for
// offline deployments and as a loading target for pre-converted GSOD
// extracts. Values are stored metric, so no unit conversion happens here.
package local

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atmoshq/weatherdesk/archive"
)

// Observation is one stored station-day. Dates are ISO strings so the
// primary key sorts chronologically.
type Observation struct {
	StationID string   `gorm:"primaryKey;column:station_id"`
	Date      string   `gorm:"primaryKey;column:date"`
	TempMin   *float64 `gorm:"column:temp_min_c"`
	TempMax   *float64 `gorm:"column:temp_max_c"`
	TempMean  *float64 `gorm:"column:temp_mean_c"`
	Precip    *float64 `gorm:"column:precip_mm"`
	WindSpeed *float64 `gorm:"column:wind_kmh"`
}

// Store is the sqlite-backed archive backend.
type Store struct {
	db *gorm.DB
}

var _ archive.Backend = (*Store)(nil)

// Open opens (creating if needed) the sqlite archive at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite archive %s: %w", path, err)
	}
	return NewStore(db)
}

// NewStore wraps an existing gorm handle; used by tests with an
// in-memory database.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Observation{}); err != nil {
		return nil, fmt.Errorf("failed to migrate observations: %w", err)
	}
	return &Store{db: db}, nil
}

// Insert loads rows into the store, replacing existing station-days.
func (s *Store) Insert(rows ...archive.ObservationRow) error {
	for _, row := range rows {
		rec := Observation{
			StationID: row.StationID,
			Date:      row.Date.String(),
			TempMin:   row.TempMin,
			TempMax:   row.TempMax,
			TempMean:  row.TempMean,
			Precip:    row.Precip,
			WindSpeed: row.WindSpeed,
		}
		if err := s.db.Save(&rec).Error; err != nil {
			return fmt.Errorf("failed to save observation %s/%s: %w", rec.StationID, rec.Date, err)
		}
	}
	return nil
}

// Query returns the station's rows inside the range, ascending by date.
func (s *Store) Query(ctx context.Context, stationID string, r archive.DateRange) ([]archive.ObservationRow, error) {
	var recs []Observation
	err := s.db.WithContext(ctx).
		Where("station_id = ? AND date BETWEEN ? AND ?", stationID, r.Start.String(), r.End.String()).
		Order("date").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("sqlite archive query failed: %w", err)
	}

	rows := make([]archive.ObservationRow, 0, len(recs))
	for _, rec := range recs {
		date, err := civil.ParseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("corrupt date %q for station %s: %w", rec.Date, rec.StationID, err)
		}
		rows = append(rows, archive.ObservationRow{
			StationID: rec.StationID,
			Date:      date,
			TempMin:   rec.TempMin,
			TempMax:   rec.TempMax,
			TempMean:  rec.TempMean,
			Precip:    rec.Precip,
			WindSpeed: rec.WindSpeed,
		})
	}
	return rows, nil
}
