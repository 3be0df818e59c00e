package toolbar

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TranslationRange is how far, in offset units, the hidden toolbar sits
// below its resting position.
const TranslationRange = 8.0

// Default transition timings. Hiding is deliberately much quicker.
const (
	DefaultShowDuration = 300 * time.Millisecond
	DefaultHideDuration = 50 * time.Millisecond
)

// State is the animator's position in its show/hide cycle.
type State int

const (
	Hidden State = iota
	Showing
	Shown
	Hiding
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Showing:
		return "showing"
	case Shown:
		return "shown"
	case Hiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// AnimatorOptions configures an Animator. Zero values select defaults.
type AnimatorOptions struct {
	ShowDuration time.Duration
	HideDuration time.Duration
	Easing       ease.TweenFunc
	// OnSettle is called when a transition completes without being
	// superseded, with the settled state (Shown or Hidden).
	OnSettle func(State)
}

// Animator tracks a visibility flag with a single value in [0,1].
//
// Every change of the flag starts a new tween from the current value toward
// 1 or 0, replacing any tween in flight, so rapid toggles stay continuous.
// There is no internal clock: callers advance it with Advance.
type Animator struct {
	value   float64
	visible bool
	state   State
	tween   *gween.Tween
	closed  bool

	show     time.Duration
	hide     time.Duration
	easing   ease.TweenFunc
	onSettle func(State)
}

// NewAnimator returns an animator settled in the Hidden state.
func NewAnimator(opts AnimatorOptions) *Animator {
	a := &Animator{
		show:     opts.ShowDuration,
		hide:     opts.HideDuration,
		easing:   opts.Easing,
		onSettle: opts.OnSettle,
		state:    Hidden,
	}
	if a.show <= 0 {
		a.show = DefaultShowDuration
	}
	if a.hide <= 0 {
		a.hide = DefaultHideDuration
	}
	if a.easing == nil {
		a.easing = ease.InOutQuad
	}
	return a
}

// SetVisible feeds the latest visibility flag. A transition starts only when
// the flag differs from the previous one; it reports whether one started.
func (a *Animator) SetVisible(visible bool) bool {
	if a.closed || visible == a.visible {
		return false
	}
	a.visible = visible

	target, duration, state := 0.0, a.hide, Hiding
	if visible {
		target, duration, state = 1.0, a.show, Showing
	}
	a.state = state
	a.tween = gween.New(float32(a.value), float32(target), float32(duration.Seconds()), a.easing)
	return true
}

// Advance moves the active transition forward by dt.
func (a *Animator) Advance(dt time.Duration) {
	if a.closed || a.tween == nil || dt < 0 {
		return
	}
	current, finished := a.tween.Update(float32(dt.Seconds()))
	if finished {
		a.settle()
		return
	}
	a.value = clamp01(float64(current))
}

func (a *Animator) settle() {
	a.tween = nil
	if a.visible {
		a.value, a.state = 1, Shown
	} else {
		a.value, a.state = 0, Hidden
	}
	if a.onSettle != nil {
		a.onSettle(a.state)
	}
}

// Stop abandons any transition for good. The value stays where it is, no
// settle callback fires and later calls are ignored.
func (a *Animator) Stop() {
	a.closed = true
	a.tween = nil
}

// Value is the current progress between hidden (0) and shown (1).
func (a *Animator) Value() float64 {
	return a.value
}

// Offset is the current vertical translation.
func (a *Animator) Offset() float64 {
	return Offset(a.value)
}

// State returns the current state.
func (a *Animator) State() State {
	return a.state
}

// Animating reports whether a transition is in flight.
func (a *Animator) Animating() bool {
	return a.tween != nil
}

// Offset maps an animation value in [0,1] onto [TranslationRange, 0].
func Offset(value float64) float64 {
	return TranslationRange * (1 - value)
}

// EasingByName resolves the easing names accepted in the config file.
// Unknown names fall back to ease.InOutQuad.
func EasingByName(name string) ease.TweenFunc {
	switch name {
	case "inOutSine":
		return ease.InOutSine
	case "inOutCubic":
		return ease.InOutCubic
	case "linear":
		return ease.Linear
	default:
		return ease.InOutQuad
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
