package input

// DefaultSwipeThreshold is the horizontal distance a swipe must exceed.
const DefaultSwipeThreshold = 50

// Swipe tracks a touch gesture between start and end events.
type Swipe struct {
	Threshold int

	startX int
	active bool
}

// NewSwipe returns a tracker with the given threshold. Non-positive values
// fall back to DefaultSwipeThreshold.
func NewSwipe(threshold int) *Swipe {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Swipe{Threshold: threshold}
}

// Start records the horizontal position where the gesture began.
func (s *Swipe) Start(x int) {
	s.startX = x
	s.active = true
}

// Active reports whether a gesture is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// End finishes the gesture at x. A leftward swipe beyond the threshold
// advances and a rightward one goes back. Shorter gestures are ignored.
// Without a preceding Start the last recorded start position is used.
func (s *Swipe) End(x int) Action {
	s.active = false
	return Classify(s.startX, x, s.Threshold)
}

// Classify resolves a displacement from startX to endX.
func Classify(startX, endX, threshold int) Action {
	diff := startX - endX
	if abs(diff) <= threshold {
		return ActionNone
	}
	if diff > 0 {
		return ActionNext
	}
	return ActionPrev
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
