package present

import (
	"errors"
	"fmt"

	"github.com/kyaoi/mdslides/internal/input"
	"github.com/kyaoi/mdslides/internal/nav"
)

// Element IDs of the controls every host must supply.
const (
	IDPrev      = string(input.ControlPrev)
	IDNext      = string(input.ControlNext)
	IDTheme     = string(input.ControlTheme)
	IDThemeIcon = "themeIcon"
	IDCurrent   = "currentSlide"
	IDTotal     = "totalSlides"
	IDProgress  = "progressBar"
)

// RequiredControls lists the control IDs validated at construction.
var RequiredControls = []string{IDPrev, IDNext, IDTheme, IDThemeIcon, IDCurrent, IDTotal, IDProgress}

// ErrMissingElement is returned when a required element is absent.
var ErrMissingElement = fmt.Errorf("%w: missing element", nav.ErrInvalidConfiguration)

// Element is a single node of the host tree. The synchronizer writes to it
// and the renderer reads from it.
type Element struct {
	ID          string
	Visible     bool
	Interactive bool
	Enabled     bool
	Text        string
	Width       float64
}

// Host is the fixed set of slide containers and control elements.
type Host struct {
	// Dark is the root-level theme marker.
	Dark bool

	Slides   []*Element
	controls map[string]*Element
}

// NewHost builds a host with one container per slide ID and the full set of
// required controls.
func NewHost(slideIDs []string) *Host {
	h := NewEmptyHost()
	for _, id := range slideIDs {
		h.Slides = append(h.Slides, &Element{ID: id})
	}
	for _, id := range RequiredControls {
		h.AddControl(&Element{ID: id, Enabled: true})
	}
	return h
}

// NewEmptyHost returns a host with no elements.
func NewEmptyHost() *Host {
	return &Host{controls: make(map[string]*Element)}
}

// AddControl registers el under its ID, replacing any previous element.
func (h *Host) AddControl(el *Element) {
	if h.controls == nil {
		h.controls = make(map[string]*Element)
	}
	h.controls[el.ID] = el
}

// Control returns the control registered under id, or nil.
func (h *Host) Control(id string) *Element {
	return h.controls[id]
}

// Validate checks that the host can back a navigator.
func (h *Host) Validate() error {
	if len(h.Slides) == 0 {
		return fmt.Errorf("%w: no slides", nav.ErrInvalidConfiguration)
	}
	var errs []error
	for i, el := range h.Slides {
		if el == nil {
			errs = append(errs, fmt.Errorf("%w: slide %d", ErrMissingElement, i+1))
		}
	}
	for _, id := range RequiredControls {
		if h.controls[id] == nil {
			errs = append(errs, fmt.Errorf("%w %q", ErrMissingElement, id))
		}
	}
	return errors.Join(errs...)
}

// VisibleSlides returns the indexes of slides currently marked visible.
func (h *Host) VisibleSlides() []int {
	var idx []int
	for i, el := range h.Slides {
		if el.Visible {
			idx = append(idx, i)
		}
	}
	return idx
}

// ActiveSlide returns the index of the first visible slide, or -1.
func (h *Host) ActiveSlide() int {
	for i, el := range h.Slides {
		if el.Visible {
			return i
		}
	}
	return -1
}
