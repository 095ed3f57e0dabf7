package datastructure

// SearchFilter model info
//
//	@Description	filter selected by the user. region is a display name, category and landscape are taxonomy ids.
type SearchFilter struct {
	Region    string `json:"region,omitempty"`    // region display name, e.g. "Mendoza"
	Category  string `json:"category,omitempty"`  // category id, e.g. "naturaleza"
	Landscape string `json:"landscape,omitempty"` // landscape id, e.g. "rios_y_mar"
}

// IsZero reports whether no field of the filter is set.
func (f SearchFilter) IsZero() bool {
	return f.Region == "" && f.Category == "" && f.Landscape == ""
}

// PointOfInterest model info
//
//	@Description	display-ready osm object derived from one overpass element.
type PointOfInterest struct {
	ID       int64             `json:"id"`               // osm id
	Kind     string            `json:"kind"`             // node, way or relation
	Name     string            `json:"name"`             // name tag, or a name derived from tourism/natural/amenity
	Category string            `json:"category"`         // category or landscape id, or a label inferred from the tags
	Lat      float64           `json:"lat"`              // element latitude, or its center latitude for ways/relations
	Lon      float64           `json:"lon"`              // element longitude, or its center longitude for ways/relations
	Tags     map[string]string `json:"tags,omitempty"`   // raw osm tags
	Region   string            `json:"region,omitempty"` // display name of the region the point was searched in
}

// SearchStats model info
//
//	@Description	number of points found, in total and per category label.
type SearchStats struct {
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
}

// Coordinate is a wgs84 reference point used to order results by distance.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Taxonomy model info
//
//	@Description	selectable category and landscape ids.
type Taxonomy struct {
	Categories []string `json:"categories"`
	Landscapes []string `json:"landscapes"`
}
