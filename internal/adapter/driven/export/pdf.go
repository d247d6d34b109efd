package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

// ExportSummaryToPDF genera un resumen PDF del lote: una página por edificio
// con los totales de cada sección.
func (r *ExportRepositoryImpl) ExportSummaryToPDF(annexes []entity.BuildingAnnex, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	for i, annex := range annexes {
		pdf.AddPage()

		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", annex.Building)), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Inventario energético - %s %d", annex.Month, annex.Year)), "", 1, "L", true, 0, "")
		pdf.Ln(6)

		for _, section := range annex.Sections {
			drawSection(section.Title, summarizeSection(section))
		}

		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Resumen de anexos - %s %d", annex.Month, annex.Year)
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d", i+1)), "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// summarizeSection produce el cuerpo de texto de una sección: recuento de
// equipos y totales por columna.
func summarizeSection(section entity.Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Equipos inventariados: %d", len(section.Rows))
	if line := renderTotalsLine(section); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}
