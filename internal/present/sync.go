package present

import (
	"strconv"

	"github.com/kyaoi/mdslides/internal/nav"
)

// Synchronizer applies projections to a host. It keeps no state of its own.
type Synchronizer struct {
	host *Host
}

// NewSynchronizer returns a synchronizer writing to h.
func NewSynchronizer(h *Host) *Synchronizer {
	return &Synchronizer{host: h}
}

// Apply updates every derived element from p.
func (s *Synchronizer) Apply(p nav.Projection) {
	for i, el := range s.host.Slides {
		active := i == p.Visible
		el.Visible = active
		el.Interactive = active
	}

	s.host.Control(IDCurrent).Text = strconv.Itoa(p.Current)
	s.host.Control(IDTotal).Text = strconv.Itoa(p.Total)
	s.host.Control(IDProgress).Width = p.Progress
	s.host.Control(IDPrev).Enabled = p.PrevEnabled
	s.host.Control(IDNext).Enabled = p.NextEnabled

	s.ApplyTheme(p)
}

// ApplyTheme updates only the theme-dependent elements.
func (s *Synchronizer) ApplyTheme(p nav.Projection) {
	s.host.Dark = p.Dark
	s.host.Control(IDThemeIcon).Text = p.ThemeIcon
}
