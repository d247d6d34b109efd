package repository

import (
	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

// PhotoRepository localiza las fotos de un edificio bajo la carpeta raíz de
// fotografías de la auditoría.
type PhotoRepository interface {
	FindBuildingPhotos(root, building string) ([]entity.Photo, error)
}
