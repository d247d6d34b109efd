//go:build windows

package word

import (
	"context"
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// UpdateDocumentFields abre cada documento en una instancia oculta de Word y
// actualiza sus campos y tablas de contenido antes de guardarlo.
func (r *WordRepositoryImpl) UpdateDocumentFields(ctx context.Context, docPaths []string) error {
	if len(docPaths) == 0 {
		return nil
	}

	if err := ole.CoInitialize(0); err != nil {
		return fmt.Errorf("error initializing COM: %w", err)
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Word.Application")
	if err != nil {
		return fmt.Errorf("error starting Word: %w", err)
	}
	defer unknown.Release()

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("error getting Word dispatch interface: %w", err)
	}
	defer app.Release()
	defer oleutil.CallMethod(app, "Quit", false)

	oleutil.PutProperty(app, "Visible", false)
	oleutil.PutProperty(app, "DisplayAlerts", 0)

	documents := oleutil.MustGetProperty(app, "Documents").ToIDispatch()
	defer documents.Release()

	for _, path := range docPaths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := refreshDocument(documents, path); err != nil {
			return fmt.Errorf("error refreshing fields in '%s': %w", path, err)
		}
	}
	return nil
}

func refreshDocument(documents *ole.IDispatch, path string) error {
	docVar, err := oleutil.CallMethod(documents, "Open", path)
	if err != nil {
		return fmt.Errorf("error opening document: %w", err)
	}
	doc := docVar.ToIDispatch()
	defer doc.Release()
	defer oleutil.CallMethod(doc, "Close", false)

	fields := oleutil.MustGetProperty(doc, "Fields").ToIDispatch()
	if _, err := oleutil.CallMethod(fields, "Update"); err != nil {
		fields.Release()
		return fmt.Errorf("error updating fields: %w", err)
	}
	fields.Release()

	// Las tablas de contenido no se actualizan con Fields.Update.
	tocs := oleutil.MustGetProperty(doc, "TablesOfContents").ToIDispatch()
	count := int(oleutil.MustGetProperty(tocs, "Count").Val)
	for i := 1; i <= count; i++ {
		toc := oleutil.MustCallMethod(tocs, "Item", i).ToIDispatch()
		oleutil.CallMethod(toc, "Update")
		toc.Release()
	}
	tocs.Release()

	if _, err := oleutil.CallMethod(doc, "Save"); err != nil {
		return fmt.Errorf("error saving document: %w", err)
	}
	return nil
}
