// Package stations maps city names to physical observation stations.
// The directory is built once at startup and is read-only afterwards,
// so it is safe for unsynchronized concurrent use.
package stations

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Station is a fixed geographic point with historical observations.
// Instances are immutable once loaded into a Directory.
type Station struct {
	// ID is the archive's station identifier (GSOD "stn-wban").
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Country   string   `json:"country"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Aliases   []string `json:"aliases,omitempty"`

	// Priority ranks stations for fuzzy tie-breaks; lower wins.
	Priority int `json:"-"`
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes city text for matching: trim, lowercase,
// strip diacritics.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return s
}
