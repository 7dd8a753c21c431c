package deck

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads a deck from a markdown file or a directory of markdown files.
// A non-empty tag keeps only sources whose frontmatter lists it.
func Load(target, tag string) (*Deck, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadDir(absTarget, tag)
	}
	return LoadFile(absTarget, tag)
}

// LoadFile reads a single-file deck.
func LoadFile(path, tag string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	source := filepath.Base(path)
	meta, slides, err := Parse(source, data)
	if err != nil {
		return nil, err
	}
	if tag != "" && !meta.HasTag(tag) {
		slides = nil
	}
	if len(slides) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoSlides)
	}

	title := meta.Title
	if title == "" {
		title = slides[0].Title
	}
	return &Deck{Title: title, Theme: meta.Theme, Slides: slides}, nil
}

// LoadDir reads every markdown file under root, in loader order.
func LoadDir(root, tag string) (*Deck, error) {
	loader := NewFSLoader(root)
	files, err := loader.Files()
	if err != nil {
		return nil, err
	}

	d := &Deck{}
	for _, rel := range files {
		data, err := loader.Read(rel)
		if err != nil {
			return nil, err
		}
		meta, slides, err := Parse(rel, data)
		if err != nil {
			return nil, err
		}
		if tag != "" && !meta.HasTag(tag) {
			continue
		}
		if d.Title == "" {
			d.Title = meta.Title
		}
		if d.Theme == "" {
			d.Theme = meta.Theme
		}
		d.Slides = append(d.Slides, slides...)
	}

	name := filepath.Base(root)
	if len(d.Slides) == 0 {
		if tag != "" {
			return nil, fmt.Errorf("%s/ (tag %q): %w", name, tag, ErrNoSlides)
		}
		return nil, fmt.Errorf("%s/: %w", name, ErrNoSlides)
	}
	if d.Title == "" {
		d.Title = name
	}
	return d, nil
}
