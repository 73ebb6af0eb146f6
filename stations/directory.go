package stations

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/atmoshq/weatherdesk/errs"
)

// DefaultMaxDistance is the edit-distance ceiling for fuzzy matches.
const DefaultMaxDistance = 2

type key struct {
	index int    // into stations
	text  string // normalized canonical name or alias
}

// Directory resolves city text to a Station. Build it once with
// NewDirectory; it exposes no mutation and never changes afterwards.
type Directory struct {
	stations    []Station
	byName      map[string]int
	byAlias     map[string][]int
	keys        []key
	maxDistance int
}

// NewDirectory builds a directory from a static station dataset.
// Station IDs and canonical names must be unique; aliases may collide
// across stations and such collisions resolve as AmbiguousCity at lookup.
func NewDirectory(list []Station) (*Directory, error) {
	d := &Directory{
		stations:    make([]Station, len(list)),
		byName:      make(map[string]int),
		byAlias:     make(map[string][]int),
		maxDistance: DefaultMaxDistance,
	}
	copy(d.stations, list)

	seen := make(map[string]bool, len(list))
	for i, st := range d.stations {
		if st.ID == "" || st.Name == "" {
			return nil, fmt.Errorf("station %d: id and name are required", i)
		}
		if seen[st.ID] {
			return nil, fmt.Errorf("duplicate station id %q", st.ID)
		}
		seen[st.ID] = true

		name := Normalize(st.Name)
		if _, ok := d.byName[name]; ok {
			return nil, fmt.Errorf("duplicate station name %q", st.Name)
		}
		d.byName[name] = i
		d.keys = append(d.keys, key{index: i, text: name})

		for _, alias := range st.Aliases {
			a := Normalize(alias)
			d.byAlias[a] = append(d.byAlias[a], i)
			d.keys = append(d.keys, key{index: i, text: a})
		}
	}
	return d, nil
}

// Resolve maps city text to a station. Matching order: exact canonical
// name, exact alias, then fuzzy within the edit-distance threshold.
func (d *Directory) Resolve(city string) (Station, error) {
	return d.ResolveIn(city, "")
}

// ResolveIn is Resolve restricted to an ISO country code when one is given.
func (d *Directory) ResolveIn(city, country string) (Station, error) {
	q := Normalize(city)
	if q == "" {
		return Station{}, errs.New(errs.InvalidParameters, "city must not be empty")
	}
	country = strings.ToUpper(strings.TrimSpace(country))

	if i, ok := d.byName[q]; ok && d.countryOK(i, country) {
		return d.stations[i], nil
	}

	if idxs := d.filterCountry(d.byAlias[q], country); len(idxs) > 0 {
		if len(idxs) == 1 {
			return d.stations[idxs[0]], nil
		}
		names := make([]string, 0, len(idxs))
		for _, i := range idxs {
			names = append(names, fmt.Sprintf("%s (%s)", d.stations[i].Name, d.stations[i].Country))
		}
		sort.Strings(names)
		return Station{}, errs.Newf(errs.AmbiguousCity,
			"%q matches multiple stations: %s; retry with the canonical city name or a country code",
			city, strings.Join(names, ", "))
	}

	return d.fuzzy(city, q, country)
}

func (d *Directory) fuzzy(city, q, country string) (Station, error) {
	// Short inputs get a tighter budget so two edits cannot rewrite
	// most of the query.
	limit := d.maxDistance
	if half := (utf8.RuneCountInString(q) - 1) / 2; half < limit {
		limit = half
	}

	type candidate struct {
		index    int
		distance int
	}
	best := make(map[int]int) // station index -> min distance over its keys
	for _, k := range d.keys {
		if !d.countryOK(k.index, country) {
			continue
		}
		dist := levenshtein.ComputeDistance(q, k.text)
		if dist > limit {
			continue
		}
		if cur, ok := best[k.index]; !ok || dist < cur {
			best[k.index] = dist
		}
	}
	if len(best) == 0 {
		return Station{}, errs.Newf(errs.StationNotFound, "no station matches city %q", city)
	}

	candidates := make([]candidate, 0, len(best))
	for i, dist := range best {
		candidates = append(candidates, candidate{index: i, distance: dist})
	}
	// Deterministic order: distance, then dataset priority, then name.
	sort.Slice(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.distance != cb.distance {
			return ca.distance < cb.distance
		}
		sa, sb := d.stations[ca.index], d.stations[cb.index]
		if sa.Priority != sb.Priority {
			return sa.Priority < sb.Priority
		}
		return Normalize(sa.Name) < Normalize(sb.Name)
	})
	return d.stations[candidates[0].index], nil
}

func (d *Directory) countryOK(i int, country string) bool {
	return country == "" || d.stations[i].Country == country
}

func (d *Directory) filterCountry(idxs []int, country string) []int {
	if country == "" {
		return idxs
	}
	out := make([]int, 0, len(idxs))
	for _, i := range idxs {
		if d.stations[i].Country == country {
			out = append(out, i)
		}
	}
	return out
}
