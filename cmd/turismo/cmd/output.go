package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"

	"github.com/fatih/color"
	"golang.org/x/exp/maps"
)

var (
	nameColor     = color.New(color.Bold)
	categoryColor = color.New(color.FgCyan)
	mutedColor    = color.New(color.Faint)
	totalColor    = color.New(color.FgGreen, color.Bold)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPoints(w io.Writer, points []datastructure.PointOfInterest, near *datastructure.Coordinate) {
	for _, p := range points {
		line := fmt.Sprintf("%s  %s  %s",
			nameColor.Sprint(p.Name),
			categoryColor.Sprintf("[%s]", p.Category),
			mutedColor.Sprintf("%s %.5f,%.5f", p.Region, p.Lat, p.Lon),
		)
		if near != nil {
			km := geo.DistanceMeters(near.Lat, near.Lon, p.Lat, p.Lon) / 1000
			line += mutedColor.Sprintf("  %.1f km", km)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%s points\n", totalColor.Sprint(len(points)))
}

func printStats(w io.Writer, stats datastructure.SearchStats) {
	fmt.Fprintf(w, "total: %s\n", totalColor.Sprint(stats.Total))
	labels := maps.Keys(stats.Categories)
	slices.Sort(labels)
	for _, label := range labels {
		fmt.Fprintf(w, "  %s %d\n", categoryColor.Sprintf("%-12s", label), stats.Categories[label])
	}
}
