package types

import "errors"

var (
	ErrNoSheetsLoaded        = errors.New("none of the configured sheets were found in the workbook")
	ErrNoBuildingsFound      = errors.New("no building labels found in the loaded sheets")
	ErrFieldUpdateUnsupported = errors.New("word field update is only available on windows")
)
