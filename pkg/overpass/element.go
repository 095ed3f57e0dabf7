package overpass

import "github.com/paulmach/osm"

// Element is one raw object of an overpass json response. Nodes carry lat/lon,
// ways and relations queried with "out center" carry Center instead.
type Element struct {
	Type   osm.Type          `json:"type" msgpack:"type"`
	ID     int64             `json:"id" msgpack:"id"`
	Lat    *float64          `json:"lat,omitempty" msgpack:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty" msgpack:"lon,omitempty"`
	Center *Center           `json:"center,omitempty" msgpack:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty" msgpack:"tags,omitempty"`
}

type Center struct {
	Lat *float64 `json:"lat,omitempty" msgpack:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty" msgpack:"lon,omitempty"`
}

// Coordinates prefers the element's own lat/lon pair and falls back to its center.
func (e Element) Coordinates() (lat, lon float64, ok bool) {
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	if e.Center != nil && e.Center.Lat != nil && e.Center.Lon != nil {
		return *e.Center.Lat, *e.Center.Lon, true
	}
	return 0, 0, false
}

// Response is the json envelope returned by the interpreter endpoint.
type Response struct {
	Version   float64   `json:"version,omitempty"`
	Generator string    `json:"generator,omitempty"`
	Remark    string    `json:"remark,omitempty"`
	Elements  []Element `json:"elements"`
}
