// Package word refresca los campos de los documentos generados (índices,
// referencias cruzadas) automatizando Microsoft Word por COM. Fuera de
// Windows la operación no está disponible y se informa al llamante.
package word

import (
	"github.com/cofrian/artecoin-automatizaciones/internal/domain/repository"
)

// WordRepositoryImpl implementa el WordRepository.
type WordRepositoryImpl struct{}

// NewWordRepository crea una nueva implementación del WordRepository.
func NewWordRepository() repository.WordRepository {
	return &WordRepositoryImpl{}
}
