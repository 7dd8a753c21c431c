package nav

const (
	// IconSwitchToLight is shown while the dark theme is active.
	IconSwitchToLight = "☀"
	// IconSwitchToDark is shown while the light theme is active.
	IconSwitchToDark = "☾"
)

// Projection is the derived display representation of a State and Theme.
type Projection struct {
	Visible     int
	Current     int // 1-based
	Total       int
	Progress    float64 // percent in (0, 100]
	PrevEnabled bool
	NextEnabled bool
	Dark        bool
	ThemeIcon   string
}

// Project computes the display properties for s and t.
func Project(s State, t Theme) Projection {
	p := Projection{
		Visible:     s.Index,
		Current:     s.Index + 1,
		Total:       s.Total,
		PrevEnabled: !s.AtStart(),
		NextEnabled: !s.AtEnd(),
		Dark:        t.Dark,
		ThemeIcon:   IconSwitchToDark,
	}
	if s.Total > 0 {
		p.Progress = 100 * float64(s.Index+1) / float64(s.Total)
	}
	if t.Dark {
		p.ThemeIcon = IconSwitchToLight
	}
	return p
}

// Fraction returns Progress in [0, 1].
func (p Projection) Fraction() float64 {
	return p.Progress / 100
}
