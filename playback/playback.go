// Package playback replays a finished step sequence. A Player is a cursor
// over the steps; it never runs an algorithm and never changes a step.
package playback

import (
	"errors"
	"fmt"

	"github.com/khaclbit/algorithm-visualizer/step"
)

// ErrOutOfRange is returned by Seek for an index outside the sequence.
var ErrOutOfRange = errors.New("playback: step index out of range")

// State is the replay position class.
type State int

// Player states.
const (
	NotStarted State = iota
	Running
	Finished
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Player walks a step sequence. The cursor starts at -1, before the first step.
type Player struct {
	steps  []step.Step
	cursor int
}

// New returns a Player positioned before the first step.
func New(steps []step.Step) *Player {
	return &Player{steps: steps, cursor: -1}
}

// Len is the number of steps.
func (p *Player) Len() int { return len(p.steps) }

// Index is the cursor, -1 before the first step.
func (p *Player) Index() int { return p.cursor }

// State classifies the cursor. An empty sequence is never running.
func (p *Player) State() State {
	switch {
	case p.cursor < 0:
		return NotStarted
	case p.cursor >= len(p.steps)-1:
		return Finished
	default:
		return Running
	}
}

// Current returns the step under the cursor.
func (p *Player) Current() (step.Step, bool) {
	if p.cursor < 0 || p.cursor >= len(p.steps) {
		return step.Step{}, false
	}
	return p.steps[p.cursor], true
}

// Next advances one step. It returns false at the end.
func (p *Player) Next() (step.Step, bool) {
	if p.cursor+1 >= len(p.steps) {
		return step.Step{}, false
	}
	p.cursor++
	return p.steps[p.cursor], true
}

// Prev moves back one step. Moving back from the first step resets to
// not started and returns false.
func (p *Player) Prev() (step.Step, bool) {
	if p.cursor <= 0 {
		p.cursor = -1
		return step.Step{}, false
	}
	p.cursor--
	return p.steps[p.cursor], true
}

// First jumps to the first step.
func (p *Player) First() (step.Step, bool) {
	if len(p.steps) == 0 {
		return step.Step{}, false
	}
	p.cursor = 0
	return p.steps[0], true
}

// Last jumps to the final step.
func (p *Player) Last() (step.Step, bool) {
	if len(p.steps) == 0 {
		return step.Step{}, false
	}
	p.cursor = len(p.steps) - 1
	return p.steps[p.cursor], true
}

// Seek moves to step i; -1 resets.
func (p *Player) Seek(i int) error {
	if i < -1 || i >= len(p.steps) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(p.steps))
	}
	p.cursor = i
	return nil
}

// Reset moves the cursor before the first step.
func (p *Player) Reset() { p.cursor = -1 }

// Progress reports "step n of N" as (n, N) with n counted from 1; n is 0
// before the first step.
func (p *Player) Progress() (int, int) {
	return p.cursor + 1, len(p.steps)
}
