package cli

import (
	"fmt"

	"github.com/cofrian/artecoin-automatizaciones/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner muestra el banner de bienvenida con la versión.
func displayWelcomeBanner(versionStr string) {
	banner := `
          _____
         /  _  \   ____   ____ ___  ______  ______
        /  /_\  \ /    \_/ __ \\  \/  /  _ \/  ___/
       /    |    \   |  \  ___/ >    <  <_> )___ \
       \____|__  /___|  /\___  >__/\_ \____/____  >
               \/     \/     \/      \/         \/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Generador de anexos de auditoría energética (v%s)", formattedVersion)))
}
