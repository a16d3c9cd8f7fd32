// Package gesture interprets horizontal drags as month navigation.
package gesture

// Command is the navigation a finished gesture resolved to.
type Command int

const (
	None Command = iota
	PrevMonth
	NextMonth
)

// DefaultThreshold is the drag distance a swipe must exceed. Shorter drags
// are taps, not swipes.
const DefaultThreshold = 50

// Navigator tracks a single in-flight horizontal gesture. A new Start
// overwrites any unresolved one; there is no queuing.
type Navigator struct {
	threshold int
	startX    int
	active    bool
}

// New returns a navigator with the default threshold.
func New() *Navigator {
	return NewWithThreshold(DefaultThreshold)
}

// NewWithThreshold returns a navigator with a custom threshold. Terminal
// frontends pass a small cell count here since a cell is far coarser than
// a pixel.
func NewWithThreshold(threshold int) *Navigator {
	return &Navigator{threshold: threshold}
}

// Start records the horizontal coordinate where the drag began.
func (n *Navigator) Start(x int) {
	n.startX = x
	n.active = true
}

// End resolves the gesture. Leftward motion (end left of start) means next
// month, rightward means previous month, and anything within the threshold
// is a tap and yields None. Ending without a start also yields None.
func (n *Navigator) End(x int) Command {
	if !n.active {
		return None
	}
	n.active = false

	delta := n.startX - x
	if delta > n.threshold {
		return NextMonth
	}
	if delta < -n.threshold {
		return PrevMonth
	}
	return None
}

// Cancel drops any in-flight gesture.
func (n *Navigator) Cancel() {
	n.active = false
}
