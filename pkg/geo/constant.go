package geo

// Regions covers the 24 first-level divisions of Argentina.
var Regions = []Region{
	{Name: "Ciudad de Buenos Aires", Code: "AR-C"},
	{Name: "Buenos Aires", Code: "AR-B"},
	{Name: "Córdoba", Code: "AR-X"},
	{Name: "Mendoza", Code: "AR-M"},
	{Name: "Santa Fe", Code: "AR-S"},
	{Name: "Tucumán", Code: "AR-T"},
	{Name: "Salta", Code: "AR-A"},
	{Name: "Jujuy", Code: "AR-Y"},
	{Name: "La Rioja", Code: "AR-F"},
	{Name: "San Juan", Code: "AR-J"},
	{Name: "San Luis", Code: "AR-D"},
	{Name: "Entre Ríos", Code: "AR-E"},
	{Name: "Chaco", Code: "AR-H"},
	{Name: "Corrientes", Code: "AR-W"},
	{Name: "Formosa", Code: "AR-P"},
	{Name: "Misiones", Code: "AR-N"},
	{Name: "Neuquén", Code: "AR-Q"},
	{Name: "Río Negro", Code: "AR-R"},
	{Name: "Chubut", Code: "AR-U"},
	{Name: "Santa Cruz", Code: "AR-Z"},
	{Name: "Tierra del Fuego", Code: "AR-V"},
	{Name: "Catamarca", Code: "AR-K"},
	{Name: "La Pampa", Code: "AR-L"},
	{Name: "Santiago del Estero", Code: "AR-G"},
}

// CategoryRules match on tag key presence only.
var CategoryRules = map[string]TagRule{
	"naturaleza": {
		Keys: []string{"natural"},
	},
	"turismo": {
		Keys: []string{"tourism"},
	},
	"alojamiento": {
		Keys: []string{"tourism", "amenity"},
	},
}

var LandscapeRules = map[string]TagRule{
	"cerros_y_montañas": {
		Keys:   []string{"natural"},
		Values: []string{"peak", "volcano", "ridge", "cliff", "valley", "arete", "saddle"},
	},
	"rios_y_mar": {
		Keys: []string{"natural", "waterway"},
		Values: []string{
			"water", "spring", "river", "stream", "canal", "waterfall",
			"lake", "pond", "reservoir", "bay", "beach",
		},
	},
}

// Category labels inferred from element tags when the filter carries none.
const (
	LabelTourism    = "turismo"
	LabelNature     = "naturaleza"
	LabelLodging    = "alojamiento"
	LabelFallback   = "otro"
	PlaceholderName = "Sin nombre"
)
