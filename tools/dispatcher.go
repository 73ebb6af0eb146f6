package tools

import (
	"context"
	"time"

	"github.com/atmoshq/weatherdesk/archive"
	callctx "github.com/atmoshq/weatherdesk/context"
	"github.com/atmoshq/weatherdesk/errs"
	"github.com/atmoshq/weatherdesk/log"
	"github.com/atmoshq/weatherdesk/stations"
	"github.com/atmoshq/weatherdesk/weather"
)

// ResolvedStation is the resolve_city result shape.
type ResolvedStation struct {
	StationID string  `json:"stationId"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Dispatcher orchestrates the four tools over the read-only station
// directory and the archive client. It holds no per-call state, so
// concurrent invocations are independent.
type Dispatcher struct {
	directory *stations.Directory
	archive   archive.Client
	assembler weather.Assembler
	timeout   time.Duration
}

// NewDispatcher wires the pipeline. maxSeriesDays caps daily-series
// spans; timeout bounds each invocation end to end (zero disables it).
func NewDispatcher(directory *stations.Directory, client archive.Client, maxSeriesDays int, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		directory: directory,
		archive:   client,
		assembler: weather.Assembler{MaxSpanDays: maxSeriesDays},
		timeout:   timeout,
	}
}

// Call validates raw arguments for the named tool and dispatches.
// Validation failures return a structured error without touching the
// directory or the archive.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]interface{}) Response {
	if callctx.CallIDFromContext(ctx) == "" {
		ctx = callctx.WithCallID(ctx, callctx.NewCallID())
	}
	log.Debugf(ctx, "tool %s invoked", name)

	inv, err := ParseInvocation(name, args)
	if err != nil {
		log.Errorf(ctx, "tool %s rejected: %v", name, err)
		return Fail(err)
	}
	return d.Dispatch(ctx, inv)
}

// Dispatch runs a validated invocation and shapes the envelope. Error
// kinds from any component propagate unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, inv Invocation) Response {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	var (
		data interface{}
		err  error
	)
	switch p := inv.(type) {
	case *ResolveCityParams:
		data, err = d.resolveCity(ctx, p)
	case *RangeSummaryParams:
		data, err = d.rangeSummary(ctx, p)
	case *YearlyMaxParams:
		data, err = d.yearlyMaxTemp(ctx, p)
	case *DailySeriesParams:
		data, err = d.dailySeries(ctx, p)
	default:
		err = errs.Newf(errs.InvalidParameters, "unsupported invocation type %T", inv)
	}

	if err != nil {
		log.Errorf(ctx, "tool call failed: %v", err)
		return Fail(err)
	}
	return OK(data)
}

func (d *Dispatcher) resolveCity(ctx context.Context, p *ResolveCityParams) (*ResolvedStation, error) {
	st, err := d.directory.ResolveIn(p.City, p.Country)
	if err != nil {
		return nil, err
	}
	log.Debugf(ctx, "resolved %q to station %s (%s)", p.City, st.ID, st.Name)
	return &ResolvedStation{
		StationID: st.ID,
		Name:      st.Name,
		Country:   st.Country,
		Latitude:  st.Latitude,
		Longitude: st.Longitude,
	}, nil
}

func (d *Dispatcher) rangeSummary(ctx context.Context, p *RangeSummaryParams) (*weather.RangeSummary, error) {
	st, err := d.directory.Resolve(p.City)
	if err != nil {
		return nil, err
	}
	rows, err := d.archive.Fetch(ctx, st.ID, p.Range)
	if err != nil {
		return nil, err
	}
	return weather.Summarize(st.ID, rows, p.Range)
}

func (d *Dispatcher) yearlyMaxTemp(ctx context.Context, p *YearlyMaxParams) (*weather.ExtremeDay, error) {
	st, err := d.directory.Resolve(p.City)
	if err != nil {
		return nil, err
	}
	rows, err := d.archive.FetchYear(ctx, st.ID, p.Year)
	if err != nil {
		return nil, err
	}
	return weather.HottestDay(st.ID, p.Year, rows)
}

func (d *Dispatcher) dailySeries(ctx context.Context, p *DailySeriesParams) (*weather.DailySeries, error) {
	// Span limit applies before the fetch; that is the whole point of it.
	if err := d.assembler.ValidateSpan(p.Range); err != nil {
		return nil, err
	}
	st, err := d.directory.Resolve(p.City)
	if err != nil {
		return nil, err
	}
	rows, err := d.archive.Fetch(ctx, st.ID, p.Range)
	if err != nil {
		return nil, err
	}
	return d.assembler.BuildSeries(st.ID, rows, p.Range)
}
