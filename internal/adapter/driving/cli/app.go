package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cofrian/artecoin-automatizaciones/pkg/version"

	"github.com/cofrian/artecoin-automatizaciones/internal/application/usecase"
	"github.com/cofrian/artecoin-automatizaciones/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp representa la aplicación de línea de comandos.
type CLIApp struct {
	rootCmd      *cobra.Command
	annexUseCase *usecase.AnnexUseCase
	version      string
}

// NewCLIApp crea una nueva aplicación CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "anexos",
		Short:   "Generador de anexos de auditoría energética por edificio",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Generador de anexos version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Ruta a un archivo de configuración TOML, YAML o JSON")
	rootCmd.PersistentFlags().StringP("excel", "x", "", "Ruta al libro Excel del inventario de campo")
	rootCmd.PersistentFlags().StringP("template", "t", "", "Ruta a la plantilla Word del anexo")
	rootCmd.PersistentFlags().String("html-templates", "", "Directorio con las plantillas HTML del anexo")
	rootCmd.PersistentFlags().String("photos", "", "Directorio con las fotografías del trabajo de campo")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directorio de salida para los documentos (por defecto: el actual)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"docx"}, "Formatos a generar: docx, html, pdf, csv, json")
	rootCmd.PersistentFlags().StringSliceP("buildings", "b", nil, "Limita la generación a estos edificios (separados por comas)")
	rootCmd.PersistentFlags().IntP("month", "m", 0, "Mes del periodo del informe, 1-12 (por defecto: el actual)")
	rootCmd.PersistentFlags().IntP("year", "Y", 0, "Año del periodo del informe (por defecto: el actual)")
	rootCmd.PersistentFlags().String("id-column", "", "Columna identificadora de las hojas del inventario")
	rootCmd.PersistentFlags().Bool("refresh-fields", false, "Actualiza los campos de Word de los documentos generados (sólo Windows)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs vuelca las flags de la línea de comandos en un CLIArgs.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	excelPath, _ := app.rootCmd.Flags().GetString("excel")
	templatePath, _ := app.rootCmd.Flags().GetString("template")
	htmlTemplates, _ := app.rootCmd.Flags().GetString("html-templates")
	photosDir, _ := app.rootCmd.Flags().GetString("photos")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	buildings, _ := app.rootCmd.Flags().GetStringSlice("buildings")
	month, _ := app.rootCmd.Flags().GetInt("month")
	year, _ := app.rootCmd.Flags().GetInt("year")
	idColumn, _ := app.rootCmd.Flags().GetString("id-column")
	refreshFields, _ := app.rootCmd.Flags().GetBool("refresh-fields")

	// Sin directorio de salida se usa el directorio de trabajo actual.
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		ExcelPath:     excelPath,
		TemplatePath:  templatePath,
		HTMLTemplates: htmlTemplates,
		PhotosDir:     photosDir,
		Dir:           dir,
		ReportType:    reportType,
		Buildings:     buildings,
		Month:         month,
		Year:          year,
		IDColumn:      idColumn,
		RefreshFields: refreshFields,
	}

	return args, nil
}

// runCommand es el punto de entrada del comando raíz.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.annexUseCase.RunAnnexes(ctx, cliArgs)
}

// SetAnnexUseCase inyecta el caso de uso de generación de anexos.
func (app *CLIApp) SetAnnexUseCase(useCase *usecase.AnnexUseCase) {
	app.annexUseCase = useCase
}
