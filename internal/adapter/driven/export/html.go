package export

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

// photoMarkerRe localiza los marcadores de galería en las plantillas HTML,
// por ejemplo [[FOTOS]] o [[FOTOS_FACHADA]].
var photoMarkerRe = regexp.MustCompile(`\[\[FOTOS[A-Z0-9_]*\]\]`)

// tokenRe localiza los tokens de sustitución {{NOMBRE}}.
var tokenRe = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// ExportAnnexToHTML renderiza cada plantilla HTML del directorio con los datos
// del anexo y devuelve las rutas de las páginas generadas.
func (r *ExportRepositoryImpl) ExportAnnexToHTML(annex entity.BuildingAnnex, templatesDir, outputDir string) ([]string, error) {
	if templatesDir == "" {
		return nil, errors.New("no HTML templates directory configured")
	}
	entries, err := os.ReadDir(templatesDir)
	if err != nil {
		return nil, fmt.Errorf("error reading HTML templates directory '%s': %w", templatesDir, err)
	}

	dir, err := ensureDir(filepath.Join(outputDir, annex.SafeName))
	if err != nil {
		return nil, err
	}

	tokens := buildTokenMap(annex)
	grid := BuildPhotoGrid(annex.Photos)

	var pages []string
	for _, entry := range entries {
		if entry.IsDir() || !isHTMLTemplate(entry.Name()) {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(templatesDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("error reading HTML template '%s': %w", entry.Name(), err)
		}

		page := photoMarkerRe.ReplaceAllString(string(raw), grid)
		page = ReplaceTokens(page, tokens)

		outputFilename := filepath.Join(dir, entry.Name())
		if err := os.WriteFile(outputFilename, []byte(page), 0644); err != nil {
			return nil, fmt.Errorf("error writing HTML page '%s': %w", outputFilename, err)
		}
		absPath, err := filepath.Abs(outputFilename)
		if err != nil {
			absPath = outputFilename
		}
		pages = append(pages, absPath)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no HTML templates found in '%s'", templatesDir)
	}
	return pages, nil
}

func isHTMLTemplate(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}

// ReplaceTokens sustituye cada {{TOKEN}} por su valor. Los tokens sin valor
// asociado quedan en blanco para no dejar restos de plantilla en la página.
func ReplaceTokens(page string, tokens map[string]string) string {
	return tokenRe.ReplaceAllStringFunc(page, func(match string) string {
		name := tokenRe.FindStringSubmatch(match)[1]
		return tokens[name]
	})
}

// buildTokenMap aplana el anexo en los tokens que consumen las plantillas:
// EDIFICIO, MES, ANIO y TOTALES_<SECCION> por cada sección.
func buildTokenMap(annex entity.BuildingAnnex) map[string]string {
	tokens := map[string]string{
		"EDIFICIO": html.EscapeString(annex.Building),
		"MES":      html.EscapeString(annex.Month),
		"ANIO":     strconv.Itoa(annex.Year),
	}
	for _, section := range annex.Sections {
		key := strings.ToUpper(section.Key)
		tokens["TOTALES_"+key] = html.EscapeString(renderTotalsLine(section))
		tokens["FILAS_"+key] = strconv.Itoa(len(section.Rows))
	}
	return tokens
}

// BuildPhotoGrid genera la galería de fotos del edificio. La clase de la
// rejilla depende del número de fotos: hasta dos van en una sola columna,
// de tres a seis en dos columnas y a partir de siete en rejilla de relleno
// automático. Sin fotos se emite una tarjeta de aviso.
func BuildPhotoGrid(photos []entity.Photo) string {
	if len(photos) == 0 {
		return `<div class="ph-grid ph-single"><div class="ph-card ph-empty">Sin foto disponible</div></div>`
	}

	var class string
	switch {
	case len(photos) <= 2:
		class = "ph-single"
	case len(photos) <= 6:
		class = "ph-2col"
	default:
		class = "ph-fill"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="ph-grid %s">`, class)
	for _, photo := range photos {
		name := html.EscapeString(photo.Name)
		uri := html.EscapeString(filepath.ToSlash(photo.Path))
		fmt.Fprintf(&b, `<div class="ph-card"><img src="%s" alt="%s"><div class="ph-caption">%s</div></div>`, uri, name, name)
	}
	b.WriteString(`</div>`)
	return b.String()
}
