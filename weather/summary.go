// Package weather turns raw archive rows into the aggregated and
// time-series shapes the tools return. Everything here is pure: rows in,
// values out, no I/O.
package weather

import (
	"cloud.google.com/go/civil"

	"github.com/atmoshq/weatherdesk/archive"
	"github.com/atmoshq/weatherdesk/errs"
)

// RangeSummary aggregates a station's weather over a date range.
// Coverage tells callers how well-sampled the range is, so "hot because
// of 3 good readings" is distinguishable from "hot, well-sampled".
type RangeSummary struct {
	StationID string     `json:"stationId"`
	Start     civil.Date `json:"start"`
	End       civil.Date `json:"end"`

	TempMinC  float64 `json:"tempMinC"`
	TempMaxC  float64 `json:"tempMaxC"`
	TempMeanC float64 `json:"tempMeanC"`

	PrecipTotalMM float64  `json:"precipTotalMm"`
	WindMeanKMH   *float64 `json:"windMeanKmh"`

	// Coverage is observed days / requested days.
	Coverage     float64 `json:"coverage"`
	ObservedDays int     `json:"observedDays"`
}

// Summarize aggregates rows over the range. Temperature and wind skip
// missing values; missing precipitation counts as zero rain. A range with
// no usable temperature row at all is NoDataInRange; low-but-nonzero
// coverage is the caller's judgment call, not an error.
func Summarize(stationID string, rows []archive.ObservationRow, r archive.DateRange) (*RangeSummary, error) {
	var (
		observed  int
		tempMin   float64
		tempMax   float64
		tempSum   float64
		precipSum float64
		windSum   float64
		windCount int
	)

	for _, row := range rows {
		if !r.Contains(row.Date) {
			continue
		}
		if t := row.TempMean; t != nil {
			if observed == 0 || *t < tempMin {
				tempMin = *t
			}
			if observed == 0 || *t > tempMax {
				tempMax = *t
			}
			tempSum += *t
			observed++
		}
		if p := row.Precip; p != nil {
			precipSum += *p
		}
		if w := row.WindSpeed; w != nil {
			windSum += *w
			windCount++
		}
	}

	if observed == 0 {
		return nil, errs.Newf(errs.NoDataInRange,
			"station %s has no usable observations in %s", stationID, r)
	}

	summary := &RangeSummary{
		StationID:     stationID,
		Start:         r.Start,
		End:           r.End,
		TempMinC:      tempMin,
		TempMaxC:      tempMax,
		TempMeanC:     tempSum / float64(observed),
		PrecipTotalMM: precipSum,
		Coverage:      float64(observed) / float64(r.Days()),
		ObservedDays:  observed,
	}
	if windCount > 0 {
		mean := windSum / float64(windCount)
		summary.WindMeanKMH = &mean
	}
	return summary, nil
}
