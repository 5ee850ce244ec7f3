package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellit/internal/ui/theme"
)

const bannerArt = `███████╗██████╗ ███████╗██╗     ██╗     ██╗████████╗
██╔════╝██╔══██╗██╔════╝██║     ██║     ██║╚══██╔══╝
███████╗██████╔╝█████╗  ██║     ██║     ██║   ██║
╚════██║██╔═══╝ ██╔══╝  ██║     ██║     ██║   ██║
███████║██║     ███████╗███████╗███████╗██║   ██║
╚══════╝╚═╝     ╚══════╝╚══════╝╚══════╝╚═╝   ╚═╝`

const bannerCompact = "S · P · E · L · L · I · T"

// renderBanner returns the title art, or a one-line fallback for narrow
// or short terminals.
func renderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
