package nav

// Theme holds the light/dark flag. It is independent of State.
type Theme struct {
	Dark bool
}

// Toggle flips the flag.
func (t *Theme) Toggle() {
	t.Dark = !t.Dark
}

// Set replaces the flag. It reports whether the value changed.
func (t *Theme) Set(dark bool) bool {
	changed := t.Dark != dark
	t.Dark = dark
	return changed
}
