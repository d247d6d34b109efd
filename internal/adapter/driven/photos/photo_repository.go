package photos

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
	"github.com/cofrian/artecoin-automatizaciones/internal/domain/repository"
	"github.com/cofrian/artecoin-automatizaciones/pkg/sanitize"
)

// PhotoRepositoryImpl localiza las fotografías de cada edificio en el
// directorio de fotos del trabajo de campo.
type PhotoRepositoryImpl struct{}

// NewPhotoRepository crea una nueva implementación del PhotoRepository.
func NewPhotoRepository() repository.PhotoRepository {
	return &PhotoRepositoryImpl{}
}

// FindBuildingPhotos busca las fotos de un edificio. Primero prueba con una
// subcarpeta con el nombre del edificio (literal o saneado); si no existe,
// recoge los archivos sueltos del directorio raíz cuyo nombre empiece por el
// nombre del edificio. Devuelve las fotos ordenadas por nombre de archivo.
func (r *PhotoRepositoryImpl) FindBuildingPhotos(root, building string) ([]entity.Photo, error) {
	if root == "" {
		return nil, nil
	}
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("error accessing photos directory '%s': %w", root, err)
	}

	for _, sub := range []string{building, sanitize.Filename(building)} {
		dir := filepath.Join(root, sub)
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return collectPhotos(dir, "")
		}
	}
	return collectPhotos(root, building)
}

// collectPhotos recoge las imágenes de un directorio. Con prefix no vacío
// sólo se aceptan los archivos cuyo nombre normalizado empiece por él.
func collectPhotos(dir, prefix string) ([]entity.Photo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading photos directory '%s': %w", dir, err)
	}

	var normPrefix string
	if prefix != "" {
		normPrefix = normalizeName(prefix)
	}
	var found []entity.Photo
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		if normPrefix != "" && !strings.HasPrefix(normalizeName(entry.Name()), normPrefix) {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		found = append(found, entity.Photo{
			Path: filepath.Join(dir, entry.Name()),
			Name: stem,
		})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	return found, nil
}

// normalizeName iguala nombres para la comparación por prefijo: sin tildes,
// sin separadores repetidos y en minúsculas.
func normalizeName(name string) string {
	return strings.ToLower(sanitize.Filename(name))
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
