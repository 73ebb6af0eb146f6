// Package bigquery adapts the NOAA GSOD public dataset on BigQuery to the
// archive backend contract.
package bigquery

import (
	"context"
	"fmt"
	"strings"

	bq "cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/atmoshq/weatherdesk/archive"
)

// DefaultTable is the GSOD daily-observations wildcard table.
const DefaultTable = "bigquery-public-data.noaa_gsod.gsod*"

// GSOD sentinel values marking a missing measurement.
const (
	missingTemp = 9999.9 // °F
	missingPrcp = 99.99  // inches
	missingWind = 999.9  // knots
)

// Client is the warehouse-backed archive adapter.
type Client struct {
	bq    *bq.Client
	table string
}

var _ archive.Backend = (*Client)(nil)

// NewClient creates a BigQuery-backed archive client.
// credentialsFile may be empty to use ambient application credentials.
func NewClient(ctx context.Context, project, credentialsFile, table string) (*Client, error) {
	if project == "" {
		return nil, fmt.Errorf("bigquery project is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := bq.NewClient(ctx, project, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery client: %w", err)
	}
	if table == "" {
		table = DefaultTable
	}
	return &Client{bq: client, table: table}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.bq.Close()
}

type gsodRow struct {
	Date civil.Date     `bigquery:"date"`
	Temp bq.NullFloat64 `bigquery:"temp"`
	Max  bq.NullFloat64 `bigquery:"max"`
	Min  bq.NullFloat64 `bigquery:"min"`
	Prcp bq.NullFloat64 `bigquery:"prcp"`
	Wdsp bq.NullFloat64 `bigquery:"wdsp"`
}

// Query returns the station's daily rows inside the range, ascending by
// date, converted to metric units.
func (c *Client) Query(ctx context.Context, stationID string, r archive.DateRange) ([]archive.ObservationRow, error) {
	stn, wban, err := splitStationID(stationID)
	if err != nil {
		return nil, err
	}

	q := c.bq.Query(fmt.Sprintf(`
		SELECT date, temp, max, min, prcp, wdsp
		FROM `+"`%s`"+`
		WHERE stn = @stn
		  AND wban = @wban
		  AND date BETWEEN @start_date AND @end_date
		ORDER BY date`, c.table))
	q.Parameters = []bq.QueryParameter{
		{Name: "stn", Value: stn},
		{Name: "wban", Value: wban},
		{Name: "start_date", Value: r.Start},
		{Name: "end_date", Value: r.End},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("gsod query failed: %w", err)
	}

	var rows []archive.ObservationRow
	for {
		var raw gsodRow
		err := it.Next(&raw)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gsod row read failed: %w", err)
		}
		rows = append(rows, archive.ObservationRow{
			StationID: stationID,
			Date:      raw.Date,
			TempMean:  fToC(floatOrNil(raw.Temp, missingTemp)),
			TempMax:   fToC(floatOrNil(raw.Max, missingTemp)),
			TempMin:   fToC(floatOrNil(raw.Min, missingTemp)),
			Precip:    inchesToMM(floatOrNil(raw.Prcp, missingPrcp)),
			WindSpeed: knotsToKMH(floatOrNil(raw.Wdsp, missingWind)),
		})
	}
	return rows, nil
}

// splitStationID splits the directory's "stn-wban" id into GSOD columns.
func splitStationID(stationID string) (stn, wban string, err error) {
	parts := strings.SplitN(stationID, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("station id %q is not in stn-wban form", stationID)
	}
	return parts[0], parts[1], nil
}

func floatOrNil(v bq.NullFloat64, sentinel float64) *float64 {
	if !v.Valid || v.Float64 == sentinel {
		return nil
	}
	f := v.Float64
	return &f
}

func fToC(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := (*v - 32.0) * 5.0 / 9.0
	return &c
}

func inchesToMM(v *float64) *float64 {
	if v == nil {
		return nil
	}
	mm := *v * 25.4
	return &mm
}

func knotsToKMH(v *float64) *float64 {
	if v == nil {
		return nil
	}
	kmh := *v * 1.852
	return &kmh
}
