package weather

import (
	"cloud.google.com/go/civil"

	"github.com/atmoshq/weatherdesk/archive"
	"github.com/atmoshq/weatherdesk/errs"
)

// ExtremeDay is the single day of peak temperature in a year.
type ExtremeDay struct {
	StationID string     `json:"stationId"`
	Year      int        `json:"year"`
	Date      civil.Date `json:"date"`
	TempMaxC  float64    `json:"tempMaxC"`
}

// HottestDay scans a year's rows for the maximum daily-max temperature.
// Equal maxima resolve to the earliest calendar date, so the result is
// deterministic for a fixed row set regardless of input order.
func HottestDay(stationID string, year int, rows []archive.ObservationRow) (*ExtremeDay, error) {
	var best *ExtremeDay
	for _, row := range rows {
		if row.Date.Year != year || row.TempMax == nil {
			continue
		}
		t := *row.TempMax
		if best == nil || t > best.TempMaxC || (t == best.TempMaxC && row.Date.Before(best.Date)) {
			best = &ExtremeDay{
				StationID: stationID,
				Year:      year,
				Date:      row.Date,
				TempMaxC:  t,
			}
		}
	}
	if best == nil {
		return nil, errs.Newf(errs.NoDataInRange,
			"station %s has no usable temperature rows in %d", stationID, year)
	}
	return best, nil
}
