package types

// SheetSpec relaciona el nombre real de una hoja del Excel con el título de
// sección que aparece en los documentos generados.
type SheetSpec struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Title string `json:"title" yaml:"title" toml:"title"`
}

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	ExcelPath     string      `json:"excel" yaml:"excel" toml:"excel"`
	TemplatePath  string      `json:"template" yaml:"template" toml:"template"`
	HTMLTemplates string      `json:"html_templates" yaml:"html_templates" toml:"html_templates"`
	PhotosDir     string      `json:"photos" yaml:"photos" toml:"photos"`
	Dir           string      `json:"dir" yaml:"dir" toml:"dir"`
	ReportType    []string    `json:"report_type" yaml:"report_type" toml:"report_type"`
	Buildings     []string    `json:"buildings" yaml:"buildings" toml:"buildings"`
	Month         int         `json:"month" yaml:"month" toml:"month"`
	Year          int         `json:"year" yaml:"year" toml:"year"`
	IDColumn      string      `json:"id_column" yaml:"id_column" toml:"id_column"`
	RefreshFields bool        `json:"refresh_fields" yaml:"refresh_fields" toml:"refresh_fields"`
	Sheets        []SheetSpec `json:"sheets" yaml:"sheets" toml:"sheets"`
}

// DefaultSheets es el mapa hoja→sección del análisis energético. El orden de
// la lista es el orden de las secciones dentro del anexo.
func DefaultSheets() []SheetSpec {
	return []SheetSpec{
		{Key: "Clima", Title: "SISTEMAS DE CLIMATIZACIÓN"},
		{Key: "SistCC", Title: "SISTEMAS DE CALEFACCIÓN"},
		{Key: "Eleva", Title: "EQUIPOS ELEVADORES"},
		{Key: "EqHoriz", Title: "EQUIPOS HORIZONTALES"},
		{Key: "Ilum", Title: "SISTEMAS DE ILUMINACIÓN"},
		{Key: "OtrosEq", Title: "OTROS EQUIPOS"},
	}
}
