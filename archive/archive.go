// Package archive gives capability-abstracted access to the historical
// weather archive. Backends (a columnar warehouse, a local sqlite file,
// an in-memory fixture) are interchangeable behind the Backend interface;
// Archive layers coverage validation, a read-through cache and bounded
// retries on top and is what the rest of the core consumes.
package archive

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"

	"github.com/atmoshq/weatherdesk/errs"
	"github.com/atmoshq/weatherdesk/log"
)

// ObservationRow is one station-day of raw archive data. Nil pointers are
// missing measurements; archives have gaps and sentinel-coded fields.
type ObservationRow struct {
	StationID string
	Date      civil.Date
	TempMin   *float64 // °C
	TempMax   *float64 // °C
	TempMean  *float64 // °C
	Precip    *float64 // mm
	WindSpeed *float64 // km/h
}

// DateRange is an inclusive range of calendar dates with Start <= End.
type DateRange struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
}

// NewDateRange validates and builds a range.
func NewDateRange(start, end civil.Date) (DateRange, error) {
	if !start.IsValid() || !end.IsValid() {
		return DateRange{}, errs.New(errs.InvalidDateRange, "start and end must be valid calendar dates")
	}
	if end.Before(start) {
		return DateRange{}, errs.Newf(errs.InvalidDateRange, "start %s is after end %s", start, end)
	}
	return DateRange{Start: start, End: end}, nil
}

// Days returns the inclusive day count of the range.
func (r DateRange) Days() int {
	return r.End.DaysSince(r.Start) + 1
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Within reports whether the whole range falls inside outer.
func (r DateRange) Within(outer DateRange) bool {
	return outer.Contains(r.Start) && outer.Contains(r.End)
}

// Intersect clips the range to outer; ok is false when they are disjoint.
func (r DateRange) Intersect(outer DateRange) (DateRange, bool) {
	out := r
	if out.Start.Before(outer.Start) {
		out.Start = outer.Start
	}
	if out.End.After(outer.End) {
		out.End = outer.End
	}
	if out.End.Before(out.Start) {
		return DateRange{}, false
	}
	return out, true
}

func (r DateRange) String() string {
	return r.Start.String() + ".." + r.End.String()
}

// Backend is the minimal contract a concrete archive must satisfy: return
// the station's rows inside the range, ascending by date, without
// aggregating or interpolating. Missing days are simply absent.
type Backend interface {
	Query(ctx context.Context, stationID string, r DateRange) ([]ObservationRow, error)
}

// Client is the read interface the tool layer consumes.
type Client interface {
	Fetch(ctx context.Context, stationID string, r DateRange) ([]ObservationRow, error)
	FetchYear(ctx context.Context, stationID string, year int) ([]ObservationRow, error)
}

// Options configures the Archive wrapper.
type Options struct {
	// Coverage is the archive's supported window; Fetch rejects ranges
	// that leave it.
	Coverage DateRange
	// CacheTTL bounds how long fetched row sets are memoized; zero
	// disables caching.
	CacheTTL time.Duration
	// RetryAttempts is the number of retries after the first try.
	RetryAttempts uint64
	// RetryBackoff is the initial backoff interval.
	RetryBackoff time.Duration
}

// Archive implements Client over a Backend.
type Archive struct {
	backend Backend
	opts    Options
	cache   *rowCache
	group   singleflight.Group
}

var _ Client = (*Archive)(nil)

// New wraps a backend with coverage checks, caching and retries.
func New(backend Backend, opts Options) *Archive {
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 500 * time.Millisecond
	}
	return &Archive{
		backend: backend,
		opts:    opts,
		cache:   newRowCache(opts.CacheTTL),
	}
}

// Fetch returns the station's rows for the range, ascending by date.
// Any part of the range outside coverage is rejected before the backend
// is consulted.
func (a *Archive) Fetch(ctx context.Context, stationID string, r DateRange) ([]ObservationRow, error) {
	if stationID == "" {
		return nil, errs.New(errs.InvalidParameters, "station id must not be empty")
	}
	if !r.Within(a.opts.Coverage) {
		return nil, errs.Newf(errs.InvalidDateRange,
			"range %s is outside archive coverage %s", r, a.opts.Coverage)
	}
	return a.fetch(ctx, stationID, r)
}

// FetchYear returns the station's rows for a calendar year, clipped to
// coverage. Years with no coverage overlap are rejected.
func (a *Archive) FetchYear(ctx context.Context, stationID string, year int) ([]ObservationRow, error) {
	if stationID == "" {
		return nil, errs.New(errs.InvalidParameters, "station id must not be empty")
	}
	full := DateRange{
		Start: civil.Date{Year: year, Month: time.January, Day: 1},
		End:   civil.Date{Year: year, Month: time.December, Day: 31},
	}
	r, ok := full.Intersect(a.opts.Coverage)
	if !ok {
		return nil, errs.Newf(errs.InvalidDateRange,
			"year %d is outside archive coverage %s", year, a.opts.Coverage)
	}
	return a.fetch(ctx, stationID, r)
}

// fetch is the shared cached path. Concurrent misses for the same key
// collapse into one backend query; cache entries are immutable once set.
func (a *Archive) fetch(ctx context.Context, stationID string, r DateRange) ([]ObservationRow, error) {
	cacheKey := stationID + "|" + r.String()
	if rows, ok := a.cache.get(cacheKey); ok {
		log.Debugf(ctx, "archive cache hit for %s", cacheKey)
		return rows, nil
	}

	v, err, _ := a.group.Do(cacheKey, func() (interface{}, error) {
		if rows, ok := a.cache.get(cacheKey); ok {
			return rows, nil
		}
		rows, err := a.query(ctx, stationID, r)
		if err != nil {
			return nil, err
		}
		a.cache.set(cacheKey, rows)
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]ObservationRow), nil
}

// query runs the backend with bounded exponential backoff. Kinded errors
// and context expiry are not retried; exhausting the budget surfaces as
// DownstreamQueryError.
func (a *Archive) query(ctx context.Context, stationID string, r DateRange) ([]ObservationRow, error) {
	var rows []ObservationRow
	op := func() error {
		out, err := a.backend.Query(ctx, stationID, r)
		if err != nil {
			if _, kinded := errs.KindOf(err); kinded {
				return backoff.Permanent(err)
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return backoff.Permanent(err)
			}
			log.Warnf(ctx, "archive query for %s %s failed, will retry: %v", stationID, r, err)
			return err
		}
		rows = out
		return nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = a.opts.RetryBackoff
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, a.opts.RetryAttempts), ctx)

	if err := backoff.Retry(op, policy); err != nil {
		if _, kinded := errs.KindOf(err); kinded {
			var e *errs.Error
			errors.As(err, &e)
			return nil, e
		}
		return nil, errs.Wrap(errs.DownstreamQueryError,
			fmt.Sprintf("archive query for station %s failed", stationID), err)
	}

	// Backends promise ascending order; enforce it anyway so aggregation
	// never sees out-of-order rows.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}
