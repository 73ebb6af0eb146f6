package tools

import (
	"math"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/atmoshq/weatherdesk/archive"
	"github.com/atmoshq/weatherdesk/errs"
)

// Tool names forwarded verbatim by the transport layer.
const (
	ToolResolveCity   = "resolve_city"
	ToolRangeSummary  = "range_weather_summary"
	ToolYearlyMaxTemp = "yearly_max_temp"
	ToolDailySeries   = "daily_weather_series"
)

// Invocation is the closed set of tool calls. Each variant carries its
// own validated parameter struct; Dispatch switches over them
// exhaustively instead of looking handlers up by name at runtime.
type Invocation interface {
	isInvocation()
}

type ResolveCityParams struct {
	City    string
	Country string
}

type RangeSummaryParams struct {
	City  string
	Range archive.DateRange
}

type YearlyMaxParams struct {
	City string
	Year int
}

type DailySeriesParams struct {
	City  string
	Range archive.DateRange
}

func (*ResolveCityParams) isInvocation()  {}
func (*RangeSummaryParams) isInvocation() {}
func (*YearlyMaxParams) isInvocation()    {}
func (*DailySeriesParams) isInvocation()  {}

// ParseInvocation validates raw tool arguments into a typed invocation.
// It fails with InvalidParameters for malformed arguments and
// InvalidDateRange for a well-typed but inverted range, before any
// directory or archive work happens.
func ParseInvocation(name string, args map[string]interface{}) (Invocation, error) {
	switch name {
	case ToolResolveCity:
		city, err := cityArg(args)
		if err != nil {
			return nil, err
		}
		country, err := stringArg(args, "country", false)
		if err != nil {
			return nil, err
		}
		return &ResolveCityParams{City: city, Country: country}, nil

	case ToolRangeSummary:
		city, err := cityArg(args)
		if err != nil {
			return nil, err
		}
		r, err := dateRangeArg(args)
		if err != nil {
			return nil, err
		}
		return &RangeSummaryParams{City: city, Range: r}, nil

	case ToolYearlyMaxTemp:
		city, err := cityArg(args)
		if err != nil {
			return nil, err
		}
		year, err := intArg(args, "year")
		if err != nil {
			return nil, err
		}
		return &YearlyMaxParams{City: city, Year: year}, nil

	case ToolDailySeries:
		city, err := cityArg(args)
		if err != nil {
			return nil, err
		}
		r, err := dateRangeArg(args)
		if err != nil {
			return nil, err
		}
		return &DailySeriesParams{City: city, Range: r}, nil
	}

	return nil, errs.Newf(errs.InvalidParameters, "unknown tool %q", name)
}

func cityArg(args map[string]interface{}) (string, error) {
	city, err := stringArg(args, "city", true)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(city) == "" {
		return "", errs.New(errs.InvalidParameters, `argument "city" must not be empty`)
	}
	return city, nil
}

func stringArg(args map[string]interface{}, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", errs.Newf(errs.InvalidParameters, "missing required argument %q", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errs.Newf(errs.InvalidParameters, "argument %q must be a string", key)
	}
	return s, nil
}

func intArg(args map[string]interface{}, key string) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, errs.Newf(errs.InvalidParameters, "missing required argument %q", key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		// JSON numbers decode as float64; reject fractional values.
		if n != math.Trunc(n) {
			return 0, errs.Newf(errs.InvalidParameters, "argument %q must be an integer", key)
		}
		return int(n), nil
	}
	return 0, errs.Newf(errs.InvalidParameters, "argument %q must be an integer", key)
}

func dateArg(args map[string]interface{}, key string) (civil.Date, error) {
	s, err := stringArg(args, key, true)
	if err != nil {
		return civil.Date{}, err
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, errs.Newf(errs.InvalidParameters,
			"argument %q must be a calendar date in YYYY-MM-DD form", key)
	}
	return d, nil
}

func dateRangeArg(args map[string]interface{}) (archive.DateRange, error) {
	start, err := dateArg(args, "start")
	if err != nil {
		return archive.DateRange{}, err
	}
	end, err := dateArg(args, "end")
	if err != nil {
		return archive.DateRange{}, err
	}
	return archive.NewDateRange(start, end)
}
