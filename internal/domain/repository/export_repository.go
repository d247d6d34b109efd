package repository

import (
	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

// ExportRepository agrupa los emisores de documentos por edificio.
type ExportRepository interface {
	// Anexo Word por edificio (sustitución literal de marcadores).
	ExportAnnexToDOCX(annex entity.BuildingAnnex, templatePath, outputDir string) (string, error)

	// Informes HTML por edificio (marcadores {{TOKEN}} y bloques [[FOTOS_*]]).
	ExportAnnexToHTML(annex entity.BuildingAnnex, templatesDir, outputDir string) ([]string, error)

	// Anexo resumen en PDF, una página por edificio.
	ExportSummaryToPDF(annexes []entity.BuildingAnnex, filename, outputDir string) (string, error)

	// Volcado de totales edificio × sección.
	ExportTotalsToCSV(annexes []entity.BuildingAnnex, filename, outputDir string) (string, error)
	ExportTotalsToJSON(annexes []entity.BuildingAnnex, filename, outputDir string) (string, error)
}
