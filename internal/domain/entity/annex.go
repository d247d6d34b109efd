package entity

// BuildingColumn es la columna que particiona las hojas por edificio.
const BuildingColumn = "EDIFICIO"

// TotalsLabel es la etiqueta fija de la fila sintética de totales.
const TotalsLabel = "Total general"

// Section holds one equipment family for a single building: its rows plus the
// synthetic totals row appended by the calculator.
type Section struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
	Totals  Row      `json:"totals"`
}

// BuildingAnnex is everything the emitters need to render one building.
type BuildingAnnex struct {
	Building string    `json:"building"`
	SafeName string    `json:"safe_name"`
	Month    string    `json:"month"`
	Year     int       `json:"year"`
	Sections []Section `json:"sections"`
	Photos   []Photo   `json:"photos,omitempty"`
}

// Photo referencia una foto del edificio en disco.
type Photo struct {
	Path string `json:"path"`
	Name string `json:"name"`
}
