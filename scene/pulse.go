// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Modes are the ways a [Pulse] can move its value.
type Modes int32

const (
	// Bounce moves the value by a fixed step, reversing direction
	// once it passes above 1 or below 0.
	Bounce Modes = iota

	// Sine moves the value smoothly between 0 and 1 along a sine wave.
	Sine
)

var modeNames = [...]string{"bounce", "sine"}

func (m Modes) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Modes(%d)", int32(m))
	}
	return modeNames[m]
}

// ModeFromString returns the mode with the given name.
func ModeFromString(s string) (Modes, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range modeNames {
		if s == nm {
			return Modes(i), nil
		}
	}
	return Bounce, fmt.Errorf("scene: unknown animation mode %q, must be one of %s", s, strings.Join(modeNames[:], ", "))
}

// DefaultStep is the per-frame step of a new [Pulse].
const DefaultStep = 0.05

// Pulse is a value that moves back and forth between 0 and 1,
// advanced once per frame.
type Pulse struct {

	// Mode is how the value moves.
	Mode Modes

	// Step is the size of one frame's change. For [Sine] it is the
	// fraction of a half period.
	Step float32

	value float32
	inc   float32
	phase float32
}

// NewPulse returns a new [Pulse] starting at 0 and rising.
func NewPulse(mode Modes, step float32) *Pulse {
	if step <= 0 {
		step = DefaultStep
	}
	return &Pulse{Mode: mode, Step: step, inc: step}
}

// Value returns the current value.
func (p *Pulse) Value() float32 {
	return p.value
}

// Next returns the current value and then advances the pulse by one frame.
// In [Bounce] mode the value can overshoot the range by less than one step
// before it turns back.
func (p *Pulse) Next() float32 {
	v := p.value
	p.advance()
	return v
}

func (p *Pulse) advance() {
	switch p.Mode {
	case Sine:
		p.phase += p.Step * math32.Pi
		if p.phase > 2*math32.Pi {
			p.phase -= 2 * math32.Pi
		}
		p.value = 0.5 - 0.5*math32.Cos(p.phase)
	default:
		if p.inc == 0 {
			p.inc = p.Step
		}
		switch {
		case p.value > 1:
			p.inc = -math32.Abs(p.Step)
		case p.value < 0:
			p.inc = math32.Abs(p.Step)
		}
		p.value += p.inc
	}
}

// Reset returns the pulse to 0, rising.
func (p *Pulse) Reset() {
	p.value = 0
	p.phase = 0
	p.inc = p.Step
}
