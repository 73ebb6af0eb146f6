// Package archivetest provides a deterministic in-memory archive backend
// for tests.
package archivetest

import (
	"context"
	"sort"
	"sync"

	"github.com/atmoshq/weatherdesk/archive"
)

// Fake is an in-memory Backend that records call counts and can be told
// to fail.
type Fake struct {
	mu       sync.Mutex
	rows     map[string][]archive.ObservationRow
	calls    int
	failures int
	failErr  error
}

var _ archive.Backend = (*Fake)(nil)

func New() *Fake {
	return &Fake{rows: make(map[string][]archive.ObservationRow)}
}

// Add loads fixture rows.
func (f *Fake) Add(rows ...archive.ObservationRow) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range rows {
		f.rows[row.StationID] = append(f.rows[row.StationID], row)
	}
}

// FailNext makes the next n queries return err.
func (f *Fake) FailNext(n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = n
	f.failErr = err
}

// Calls returns how many times Query ran.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *Fake) Query(_ context.Context, stationID string, r archive.DateRange) ([]archive.ObservationRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.failures > 0 {
		f.failures--
		return nil, f.failErr
	}

	var out []archive.ObservationRow
	for _, row := range f.rows[stationID] {
		if r.Contains(row.Date) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
