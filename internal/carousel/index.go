package carousel

// DefaultSwipeThreshold is the horizontal distance, in CSS pixels, a touch
// must travel before it counts as a swipe.
const DefaultSwipeThreshold = 50

// Direction is the outcome of a touch gesture.
type Direction int

const (
	None Direction = iota
	// Left is a finger moving right-to-left; it advances to the next item.
	Left
	// Right is a finger moving left-to-right; it goes back one item.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Wrap maps any integer onto [0, n). n must be positive.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

func NextIndex(active, n int) int {
	return (active + 1) % n
}

func PrevIndex(active, n int) int {
	return (active - 1 + n) % n
}

// Classify turns a start and end X coordinate into a swipe direction.
// |start-end| must exceed threshold.
func Classify(startX, endX, threshold int) Direction {
	delta := startX - endX
	switch {
	case delta > threshold:
		return Left
	case -delta > threshold:
		return Right
	}
	return None
}

// Step applies a swipe direction to an index.
func Step(active, n int, d Direction) int {
	switch d {
	case Left:
		return NextIndex(active, n)
	case Right:
		return PrevIndex(active, n)
	}
	return active
}
