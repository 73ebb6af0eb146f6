package tools

import (
	"context"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// Wire input shapes for the agent runtime. Dates stay strings here; the
// dispatcher owns validation so both entry paths reject the same way.

type ResolveCityInput struct {
	City    string `json:"city" description:"City name, e.g. 'Kuwait' or 'Doha'"`
	Country string `json:"country,omitempty" description:"Optional ISO country code to narrow the match"`
}

type RangeSummaryInput struct {
	City  string `json:"city" description:"City name"`
	Start string `json:"start" description:"Inclusive start date, YYYY-MM-DD"`
	End   string `json:"end" description:"Inclusive end date, YYYY-MM-DD"`
}

type YearlyMaxTempInput struct {
	City string `json:"city" description:"City name"`
	Year int    `json:"year" description:"Calendar year, e.g. 2025"`
}

type DailySeriesInput struct {
	City  string `json:"city" description:"City name"`
	Start string `json:"start" description:"Inclusive start date, YYYY-MM-DD"`
	End   string `json:"end" description:"Inclusive end date, YYYY-MM-DD"`
}

// RegisterAll defines the four weather tools against the runtime and
// records their executors in the registry.
func RegisterAll(gk *genkit.Genkit, registry *Registry, d *Dispatcher) {
	if gk == nil || registry == nil {
		return
	}

	registry.Register(genkit.DefineTool[*ResolveCityInput, Response](
		gk,
		ToolResolveCity,
		"Resolves a city name to a weather observation station: id, name, country and coordinates.",
		func(ctx *ai.ToolContext, in *ResolveCityInput) (Response, error) {
			return d.Call(ctx, ToolResolveCity, map[string]interface{}{
				"city": in.City, "country": in.Country,
			}), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return d.Call(ctx, ToolResolveCity, args), nil
	})

	registry.Register(genkit.DefineTool[*RangeSummaryInput, Response](
		gk,
		ToolRangeSummary,
		"Aggregates historical weather for a city between two dates: min/max/mean temperature (C), total rainfall (mm), mean wind (km/h) and coverage.",
		func(ctx *ai.ToolContext, in *RangeSummaryInput) (Response, error) {
			return d.Call(ctx, ToolRangeSummary, map[string]interface{}{
				"city": in.City, "start": in.Start, "end": in.End,
			}), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return d.Call(ctx, ToolRangeSummary, args), nil
	})

	registry.Register(genkit.DefineTool[*YearlyMaxTempInput, Response](
		gk,
		ToolYearlyMaxTemp,
		"Finds the hottest day of a year for a city: the date and its maximum temperature (C).",
		func(ctx *ai.ToolContext, in *YearlyMaxTempInput) (Response, error) {
			return d.Call(ctx, ToolYearlyMaxTemp, map[string]interface{}{
				"city": in.City, "year": in.Year,
			}), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return d.Call(ctx, ToolYearlyMaxTemp, args), nil
	})

	registry.Register(genkit.DefineTool[*DailySeriesInput, Response](
		gk,
		ToolDailySeries,
		"Returns a gap-aware daily weather series for a city between two dates; missing days are explicit null entries.",
		func(ctx *ai.ToolContext, in *DailySeriesInput) (Response, error) {
			return d.Call(ctx, ToolDailySeries, map[string]interface{}{
				"city": in.City, "start": in.Start, "end": in.End,
			}), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return d.Call(ctx, ToolDailySeries, args), nil
	})
}
