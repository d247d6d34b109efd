package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/repository"
)

// ExportRepositoryImpl implementa el ExportRepository. Los emisores por
// formato viven en docx.go, html.go, pdf.go y totals.go.
type ExportRepositoryImpl struct{}

// NewExportRepository crea una nueva implementación del ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// generateFilename crea un nombre de archivo único con marca de tiempo y
// garantiza que el directorio exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// ensureDir normaliza el directorio de salida (vacío → directorio actual).
func ensureDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return dir, nil
}
