package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSlides is returned when a source yields no slide content.
var ErrNoSlides = errors.New("no slides found")

// Meta is the optional frontmatter of a deck source.
type Meta struct {
	Title string   `yaml:"title" toml:"title" json:"title"`
	Theme string   `yaml:"theme" toml:"theme" json:"theme"`
	Tags  []string `yaml:"tags" toml:"tags" json:"tags"`
}

// HasTag reports whether tag appears in the metadata (case-insensitive).
func (m Meta) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

// Slide is one addressable unit of the deck.
type Slide struct {
	ID     string
	Title  string
	Body   string
	Source string
}

// Deck is the ordered, fixed sequence of slides for a session.
type Deck struct {
	Title  string
	Theme  string
	Slides []Slide
}

// Len returns the slide count.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// IDs returns the slide identifiers in order.
func (d *Deck) IDs() []string {
	ids := make([]string, 0, d.Len())
	for _, s := range d.Slides {
		ids = append(ids, s.ID)
	}
	return ids
}

// ParseError describes a deck source that could not be read.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
