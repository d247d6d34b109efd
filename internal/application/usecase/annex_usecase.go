package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
	"github.com/cofrian/artecoin-automatizaciones/internal/domain/repository"
	"github.com/cofrian/artecoin-automatizaciones/internal/shared/types"
	"github.com/cofrian/artecoin-automatizaciones/pkg/sanitize"
)

// AnnexUseCase handles the generation of per-building annex documents.
type AnnexUseCase struct {
	workbookRepo repository.WorkbookRepository
	exportRepo   repository.ExportRepository
	configRepo   repository.ConfigRepository
	photoRepo    repository.PhotoRepository
	wordRepo     repository.WordRepository
	console      types.ConsoleInterface
}

// NewAnnexUseCase creates a new annex use case.
func NewAnnexUseCase(
	workbookRepo repository.WorkbookRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	photoRepo repository.PhotoRepository,
	wordRepo repository.WordRepository,
	console types.ConsoleInterface,
) *AnnexUseCase {
	return &AnnexUseCase{
		workbookRepo: workbookRepo,
		exportRepo:   exportRepo,
		configRepo:   configRepo,
		photoRepo:    photoRepo,
		wordRepo:     wordRepo,
		console:      console,
	}
}

// RunAnnexes ejecuta el flujo completo: cargar, limpiar, particionar por
// edificio, calcular totales y emitir un documento por edificio. El fallo de
// un edificio no afecta a los ya generados ni a los siguientes.
func (uc *AnnexUseCase) RunAnnexes(ctx context.Context, args *types.CLIArgs) error {
	sheets := types.DefaultSheets()
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		mergeConfig(args, cfg)
		if len(cfg.Sheets) > 0 {
			sheets = cfg.Sheets
		}
	}

	idColumn := args.IDColumn
	if idColumn == "" {
		idColumn = DefaultIDColumn
	}

	monthName, year := uc.resolvePeriod(args)

	status := uc.console.Status("Cargando hojas del Excel...")
	tables, missing, err := uc.workbookRepo.LoadSheets(ctx, args.ExcelPath, sheets)
	status.Stop()
	if err != nil {
		return fmt.Errorf("loading workbook %s: %w", args.ExcelPath, err)
	}
	for _, key := range missing {
		uc.console.LogWarning("Hoja '%s' no encontrada en el libro, se omite", key)
	}
	if len(tables) == 0 {
		return types.ErrNoSheetsLoaded
	}

	for i := range tables {
		CleanTable(&tables[i], idColumn)
	}
	uc.console.LogInfo("Datos cargados y limpiados (%d hojas)", len(tables))

	buildings := uc.collectBuildings(tables, args.Buildings)
	if len(buildings) == 0 {
		return types.ErrNoBuildingsFound
	}

	progress := uc.console.ProgressWithTotal(len(buildings))

	var annexes []entity.BuildingAnnex
	var generatedDocs []string

	for _, building := range buildings {
		annex := uc.buildAnnex(tables, building, monthName, year)

		if uc.photoRepo != nil && args.PhotosDir != "" {
			photos, err := uc.photoRepo.FindBuildingPhotos(args.PhotosDir, building)
			if err != nil {
				uc.console.LogWarning("No se pudieron buscar fotos de '%s': %s", building, err)
			} else {
				annex.Photos = photos
			}
		}

		for _, reportType := range args.ReportType {
			switch reportType {
			case "docx":
				docPath, err := uc.exportRepo.ExportAnnexToDOCX(annex, args.TemplatePath, args.Dir)
				if err != nil {
					uc.console.LogError("Fallo generando el anexo Word de '%s': %s", building, err)
					continue
				}
				uc.console.LogSuccess("Documento generado: %s", docPath)
				generatedDocs = append(generatedDocs, docPath)
			case "html":
				pages, err := uc.exportRepo.ExportAnnexToHTML(annex, args.HTMLTemplates, args.Dir)
				if err != nil {
					uc.console.LogError("Fallo generando el HTML de '%s': %s", building, err)
					continue
				}
				uc.console.LogSuccess("HTML generado para '%s' (%d páginas)", building, len(pages))
			}
		}

		annexes = append(annexes, annex)
		progress.Increment()
	}
	progress.Stop()

	uc.exportSummaries(annexes, args)
	uc.printSummaryTable(annexes)

	if args.RefreshFields && len(generatedDocs) > 0 {
		uc.console.LogInfo("Actualizando campos de %d documentos...", len(generatedDocs))
		if err := uc.wordRepo.UpdateDocumentFields(ctx, generatedDocs); err != nil {
			if errors.Is(err, types.ErrFieldUpdateUnsupported) {
				uc.console.LogWarning("Actualización de campos no disponible en esta plataforma")
			} else {
				uc.console.LogError("Fallo actualizando campos: %s", err)
			}
		} else {
			uc.console.LogSuccess("Índices y referencias actualizados")
		}
	}

	return nil
}

// buildAnnex particiona cada hoja por edificio y añade la fila de totales de
// cada sección.
func (uc *AnnexUseCase) buildAnnex(tables []entity.Table, building, monthName string, year int) entity.BuildingAnnex {
	annex := entity.BuildingAnnex{
		Building: building,
		SafeName: sanitize.Filename(building),
		Month:    monthName,
		Year:     year,
	}

	for i := range tables {
		t := &tables[i]
		subset := t.Subset(entity.BuildingColumn, building)
		annex.Sections = append(annex.Sections, entity.Section{
			Key:     t.Key,
			Title:   t.Title,
			Columns: t.Columns,
			Rows:    subset,
			Totals:  BuildingTotals(t, subset),
		})
	}

	return annex
}

// collectBuildings une las etiquetas de edificio de todas las hojas,
// ordenadas, aplicando el filtro de la línea de comandos si lo hay.
func (uc *AnnexUseCase) collectBuildings(tables []entity.Table, filter []string) []string {
	seen := map[string]bool{}
	for i := range tables {
		for _, b := range tables[i].Buildings(entity.BuildingColumn) {
			seen[b] = true
		}
	}

	wanted := map[string]bool{}
	for _, f := range filter {
		wanted[strings.TrimSpace(f)] = true
	}

	var out []string
	for b := range seen {
		if len(wanted) > 0 && !wanted[b] {
			continue
		}
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// resolvePeriod devuelve mes y año para los campos del documento; por defecto
// la fecha actual.
func (uc *AnnexUseCase) resolvePeriod(args *types.CLIArgs) (string, int) {
	now := time.Now()
	month := args.Month
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	year := args.Year
	if year == 0 {
		year = now.Year()
	}
	return MonthName(month), year
}

// exportSummaries emite los volcados agregados (PDF, CSV, JSON) si se pidieron.
func (uc *AnnexUseCase) exportSummaries(annexes []entity.BuildingAnnex, args *types.CLIArgs) {
	if len(annexes) == 0 {
		return
	}
	for _, reportType := range args.ReportType {
		switch reportType {
		case "pdf":
			path, err := uc.exportRepo.ExportSummaryToPDF(annexes, "anexo3_resumen", args.Dir)
			if err != nil {
				uc.console.LogError("Fallo exportando el resumen PDF: %s", err)
			} else {
				uc.console.LogSuccess("Resumen PDF: %s", path)
			}
		case "csv":
			path, err := uc.exportRepo.ExportTotalsToCSV(annexes, "anexo3_totales", args.Dir)
			if err != nil {
				uc.console.LogError("Fallo exportando los totales a CSV: %s", err)
			} else {
				uc.console.LogSuccess("Totales CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportTotalsToJSON(annexes, "anexo3_totales", args.Dir)
			if err != nil {
				uc.console.LogError("Fallo exportando los totales a JSON: %s", err)
			} else {
				uc.console.LogSuccess("Totales JSON: %s", path)
			}
		}
	}
}

// printSummaryTable pinta el resumen por edificio al final de la ejecución.
func (uc *AnnexUseCase) printSummaryTable(annexes []entity.BuildingAnnex) {
	if len(annexes) == 0 {
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Edificio")
	table.AddColumn("Secciones con datos")
	table.AddColumn("Equipos")
	table.AddColumn("Fotos")

	for _, annex := range annexes {
		sections := 0
		rows := 0
		for _, s := range annex.Sections {
			if len(s.Rows) > 0 {
				sections++
				rows += len(s.Rows)
			}
		}
		table.AddRow(annex.Building, sections, rows, len(annex.Photos))
	}

	uc.console.Print(table.Render())
}

// mergeConfig aplica el archivo de configuración por debajo de los flags: un
// flag vacío toma el valor del archivo.
func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.ExcelPath == "" {
		args.ExcelPath = cfg.ExcelPath
	}
	if args.TemplatePath == "" {
		args.TemplatePath = cfg.TemplatePath
	}
	if args.HTMLTemplates == "" {
		args.HTMLTemplates = cfg.HTMLTemplates
	}
	if args.PhotosDir == "" {
		args.PhotosDir = cfg.PhotosDir
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if len(args.Buildings) == 0 {
		args.Buildings = cfg.Buildings
	}
	if args.Month == 0 {
		args.Month = cfg.Month
	}
	if args.Year == 0 {
		args.Year = cfg.Year
	}
	if args.IDColumn == "" {
		args.IDColumn = cfg.IDColumn
	}
	if cfg.RefreshFields {
		args.RefreshFields = true
	}
}
