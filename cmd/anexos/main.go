package main

import (
	"fmt"
	"os"

	"github.com/cofrian/artecoin-automatizaciones/internal/adapter/driven/config"
	"github.com/cofrian/artecoin-automatizaciones/internal/adapter/driven/excel"
	"github.com/cofrian/artecoin-automatizaciones/internal/adapter/driven/export"
	"github.com/cofrian/artecoin-automatizaciones/internal/adapter/driven/photos"
	"github.com/cofrian/artecoin-automatizaciones/internal/adapter/driven/word"
	"github.com/cofrian/artecoin-automatizaciones/internal/adapter/driving/cli"
	"github.com/cofrian/artecoin-automatizaciones/internal/application/usecase"
	"github.com/cofrian/artecoin-automatizaciones/pkg/console"
	"github.com/cofrian/artecoin-automatizaciones/pkg/version"
)

func main() {
	// Inicializa la aplicación CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa los repositorios
	workbookRepo := excel.NewWorkbookRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	photoRepo := photos.NewPhotoRepository()
	wordRepo := word.NewWordRepository()
	consoleImpl := console.NewConsole()

	// Inicializa el caso de uso
	annexUseCase := usecase.NewAnnexUseCase(
		workbookRepo,
		exportRepo,
		configRepo,
		photoRepo,
		wordRepo,
		consoleImpl,
	)

	// Inyecta el caso de uso en la aplicación CLI
	app.SetAnnexUseCase(annexUseCase)

	// Ejecuta la aplicación
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
