package repository

import (
	"context"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
	"github.com/cofrian/artecoin-automatizaciones/internal/shared/types"
)

// WorkbookRepository defines the interface for reading the source workbook.
type WorkbookRepository interface {
	// LoadSheets lee las hojas configuradas. Devuelve las tablas cargadas en
	// el orden pedido y las claves de hojas que no existían en el libro; una
	// hoja ausente no es un error.
	LoadSheets(ctx context.Context, path string, sheets []types.SheetSpec) ([]entity.Table, []string, error)
}
