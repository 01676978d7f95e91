package theme

import "github.com/gdamore/tcell/v2"

// Standard ANSI 16-color palette using correct hex values
var (
	DOSBlack     = tcell.NewHexColor(0x000000)
	DOSRed       = tcell.NewHexColor(0x800000)
	DOSGreen     = tcell.NewHexColor(0x008000)
	DOSBrown     = tcell.NewHexColor(0x808000)
	DOSBlue      = tcell.NewHexColor(0x000080)
	DOSMagenta   = tcell.NewHexColor(0x800080)
	DOSCyan      = tcell.NewHexColor(0x008080)
	DOSLightGray = tcell.NewHexColor(0xC0C0C0)

	DOSDarkGray     = tcell.NewHexColor(0x808080)
	DOSLightRed     = tcell.NewHexColor(0xFF0000)
	DOSLightGreen   = tcell.NewHexColor(0x00FF00)
	DOSYellow       = tcell.NewHexColor(0xFFFF00)
	DOSLightBlue    = tcell.NewHexColor(0x0000FF)
	DOSLightMagenta = tcell.NewHexColor(0xFF00FF)
	DOSLightCyan    = tcell.NewHexColor(0x00FFFF)
	DOSWhite        = tcell.NewHexColor(0xFFFFFF)
)

// TelixTheme is the classic DOS terminal look: light symbols on black
type TelixTheme struct{}

func NewTelixTheme() *TelixTheme {
	return &TelixTheme{}
}

func (t *TelixTheme) Name() string {
	return "telix"
}

func (t *TelixTheme) MapColors() MapColors {
	return MapColors{
		Background: DOSBlack,
		Grid:       DOSDarkGray,
		Route:      DOSCyan,
		Border:     DOSLightGray,
		Session:    DOSLightMagenta,
		Preview:    DOSYellow,
		Garden:     DOSLightGreen,
		Desert:     DOSBrown,
		Asteroid:   DOSLightGray,
		AmberZone:  DOSYellow,
		RedZone:    DOSLightRed,
		Label:      DOSWhite,
		Title:      DOSLightCyan,
	}
}

func (t *TelixTheme) ButtonColors() ButtonColors {
	return ButtonColors{
		Background: DOSBlue,
		Foreground: DOSWhite,
		SelectedBg: DOSCyan,
		SelectedFg: DOSBlack,
		Active:     DOSYellow,
		Border:     DOSWhite,
	}
}

func (t *TelixTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: DOSLightGray,
		Foreground: DOSBlack,
		ErrorFg:    DOSRed,
		CaptureFg:  DOSBlue,
	}
}
