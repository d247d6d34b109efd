package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	ExcelPath     string
	TemplatePath  string
	HTMLTemplates string
	PhotosDir     string
	Dir           string
	ReportType    []string
	Buildings     []string
	Month         int
	Year          int
	IDColumn      string
	RefreshFields bool
}
