package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"

	"github.com/spf13/cobra"
)

type filterFlags struct {
	region    string
	category  string
	landscape string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "region display name, e.g. \"Mendoza\" (see turismo regions)")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category id: alojamiento, naturaleza or turismo")
	cmd.Flags().StringVarP(&f.landscape, "landscape", "l", "", "landscape id: cerros_y_montañas or rios_y_mar")
}

func (f *filterFlags) filter() datastructure.SearchFilter {
	return datastructure.SearchFilter{
		Region:    f.region,
		Category:  f.category,
		Landscape: f.landscape,
	}
}

// parseNear reads a "lat,lon" pair.
func parseNear(s string) (*datastructure.Coordinate, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("--near must be lat,lon, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return nil, fmt.Errorf("--near latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return nil, fmt.Errorf("--near longitude: %w", err)
	}
	if !geo.ValidCoords(lat, lon) {
		return nil, fmt.Errorf("--near %q is outside the wgs84 range", s)
	}
	return &datastructure.Coordinate{Lat: lat, Lon: lon}, nil
}
