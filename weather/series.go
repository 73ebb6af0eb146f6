package weather

import (
	"cloud.google.com/go/civil"

	"github.com/atmoshq/weatherdesk/archive"
	"github.com/atmoshq/weatherdesk/errs"
)

// SeriesPoint is one calendar day of a series. All value fields are nil
// on days the archive has no observation for.
type SeriesPoint struct {
	Date      civil.Date `json:"date"`
	TempMeanC *float64   `json:"tempMeanC"`
	TempMaxC  *float64   `json:"tempMaxC"`
	TempMinC  *float64   `json:"tempMinC"`
	PrecipMM  *float64   `json:"precipMm"`
	WindKMH   *float64   `json:"windKmh"`
}

// DailySeries is a fixed-length, positionally meaningful daily series:
// Points[i] is always Start+i days, missing days included as null points.
type DailySeries struct {
	StationID string        `json:"stationId"`
	Start     civil.Date    `json:"start"`
	End       civil.Date    `json:"end"`
	Points    []SeriesPoint `json:"points"`
}

// Assembler builds daily series. MaxSpanDays caps the range length to
// guard against unbounded query cost; zero means no cap.
type Assembler struct {
	MaxSpanDays int
}

// ValidateSpan rejects ranges longer than the configured cap. Callers
// run it before fetching so over-long ranges never reach the archive.
func (a Assembler) ValidateSpan(r archive.DateRange) error {
	if a.MaxSpanDays > 0 && r.Days() > a.MaxSpanDays {
		return errs.Newf(errs.InvalidDateRange,
			"range %s spans %d days, limit is %d", r, r.Days(), a.MaxSpanDays)
	}
	return nil
}

// BuildSeries produces one point per calendar day in the range. Positions
// come from date arithmetic, not row count, so gaps never shift later
// entries. A series with no observed day at all is still a valid series.
func (a Assembler) BuildSeries(stationID string, rows []archive.ObservationRow, r archive.DateRange) (*DailySeries, error) {
	if err := a.ValidateSpan(r); err != nil {
		return nil, err
	}

	points := make([]SeriesPoint, r.Days())
	for i := range points {
		points[i].Date = r.Start.AddDays(i)
	}
	for _, row := range rows {
		if !r.Contains(row.Date) {
			continue
		}
		points[row.Date.DaysSince(r.Start)] = SeriesPoint{
			Date:      row.Date,
			TempMeanC: row.TempMean,
			TempMaxC:  row.TempMax,
			TempMinC:  row.TempMin,
			PrecipMM:  row.Precip,
			WindKMH:   row.WindSpeed,
		}
	}

	return &DailySeries{
		StationID: stationID,
		Start:     r.Start,
		End:       r.End,
		Points:    points,
	}, nil
}
