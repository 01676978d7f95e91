package theme


// PaperTheme mirrors the printed map: black ink on white
type PaperTheme struct{}

func NewPaperTheme() *PaperTheme {
	return &PaperTheme{}
}

func (t *PaperTheme) Name() string {
	return "paper"
}

func (t *PaperTheme) MapColors() MapColors {
	return MapColors{
		Background: DOSWhite,
		Grid:       DOSDarkGray,
		Route:      DOSBlack,
		Border:     DOSDarkGray,
		Session:    DOSBlue,
		Preview:    DOSLightBlue,
		Garden:     DOSBlack,
		Desert:     DOSBlack,
		Asteroid:   DOSBlack,
		AmberZone:  DOSBrown,
		RedZone:    DOSRed,
		Label:      DOSBlack,
		Title:      DOSBlack,
	}
}

func (t *PaperTheme) ButtonColors() ButtonColors {
	return ButtonColors{
		Background: DOSLightGray,
		Foreground: DOSBlack,
		SelectedBg: DOSBlack,
		SelectedFg: DOSWhite,
		Active:     DOSBlue,
		Border:     DOSBlack,
	}
}

func (t *PaperTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: DOSWhite,
		Foreground: DOSBlack,
		ErrorFg:    DOSRed,
		CaptureFg:  DOSBlue,
	}
}
