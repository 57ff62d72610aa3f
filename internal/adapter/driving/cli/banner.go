package cli

import (
	"fmt"

	"github.com/avergara/d4d-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner muestra el banner de bienvenida con la versión.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$  /$$   /$$ /$$$$$$$
        | $$__  $$| $$  | $$| $$__  $$
        | $$  \ $$| $$  | $$| $$  \ $$
        | $$  | $$| $$$$$$$$| $$  | $$
        | $$  | $$|_____  $$| $$  | $$
        | $$  | $$      | $$| $$  | $$
        | $$$$$$$/      | $$| $$$$$$$/
        |_______/       |__/|_______/
        `
	teal := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(teal(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("D4D Sell-Out Dashboard CLI (v%s)", formattedVersion)))
}
