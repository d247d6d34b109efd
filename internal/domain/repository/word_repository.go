package repository

import "context"

// WordRepository es la frontera con el procesador de textos externo. Tras
// guardar un documento solo se consume de aquí la actualización de campos
// (índices y referencias cruzadas); no devuelve nada que el núcleo use.
type WordRepository interface {
	// UpdateDocumentFields abre cada documento y actualiza sus campos. En
	// plataformas sin automatización devuelve types.ErrFieldUpdateUnsupported.
	UpdateDocumentFields(ctx context.Context, docPaths []string) error
}
