//go:build !windows

package word

import (
	"context"

	"github.com/cofrian/artecoin-automatizaciones/internal/shared/types"
)

// UpdateDocumentFields requiere la automatización COM de Word, que sólo
// existe en Windows. En el resto de plataformas se devuelve
// types.ErrFieldUpdateUnsupported para que el llamante lo trate como aviso.
func (r *WordRepositoryImpl) UpdateDocumentFields(_ context.Context, docPaths []string) error {
	if len(docPaths) == 0 {
		return nil
	}
	return types.ErrFieldUpdateUnsupported
}
