package cardform

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	frameRate = 60
	// critically damped: eases in and out without overshoot
	springFrequency = 7.0
	springDamping   = 1.0
	settleEpsilon   = 0.002
)

// frameMsg advances the transition with the matching generation.
type frameMsg struct {
	id  int
	gen int
}

// transition animates the compact layout between the number-only arrangement
// (0) and the expiry/cvc arrangement (1). A retarget starts a new generation so
// frames from an older animation are dropped.
type transition struct {
	id      int
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	gen     int
	running bool
	enabled bool
}

var lastTransitionID atomic.Int64

func nextTransitionID() int {
	return int(lastTransitionID.Add(1))
}

func newTransition(enabled bool) transition {
	return transition{
		id:      nextTransitionID(),
		spring:  harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
		enabled: enabled,
	}
}

// snap jumps to target without animating.
func (t *transition) snap(target float64) {
	t.pos, t.vel, t.target = target, 0, target
	t.running = false
	t.gen++
}

// retarget points the transition at target. It returns the first frame tick
// when an animation starts; the caller does not wait on its completion.
func (t *transition) retarget(target float64) tea.Cmd {
	if target == t.target && (t.running || t.pos == target) {
		return nil
	}
	if !t.enabled {
		t.snap(target)
		return nil
	}
	t.target = target
	t.gen++
	t.running = true
	return t.tick()
}

func (t *transition) update(msg frameMsg) tea.Cmd {
	if msg.id != t.id || msg.gen != t.gen || !t.running {
		return nil
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	if math.Abs(t.pos-t.target) < settleEpsilon && math.Abs(t.vel) < settleEpsilon {
		t.pos, t.vel = t.target, 0
		t.running = false
		return nil
	}
	return t.tick()
}

func (t *transition) tick() tea.Cmd {
	id, gen := t.id, t.gen
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen}
	})
}

// progress is the current position clamped to [0, 1].
func (t transition) progress() float64 {
	return math.Max(0, math.Min(1, t.pos))
}

func (t transition) settled() bool {
	return !t.running
}
