package core

import "time"

const (
	// DefaultDelay is the pause between generations at startup.
	DefaultDelay = 60 * time.Millisecond
	// DelayStep is the amount Faster and Slower adjust the delay by.
	DelayStep = 5 * time.Millisecond
	// MinDelay is the smallest delay Faster will go down to.
	MinDelay = 5 * time.Millisecond
	// MaxCatchUp caps the generations Due reports for a single call.
	MaxCatchUp = 8
)

// Pacer decides when the next generation is due, given a configurable delay
// between generations. The clock is injectable for tests.
type Pacer struct {
	delay       time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer that steps once per delay. The first call to
// Due always reports one generation.
func NewPacer(delay time.Duration) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetDelay(delay)
	p.accumulator = p.delay
	return p
}

// Delay returns the current delay between generations.
func (p *Pacer) Delay() time.Duration { return p.delay }

// SetDelay changes the delay. Non-positive values fall back to DefaultDelay.
func (p *Pacer) SetDelay(d time.Duration) {
	if d <= 0 {
		d = DefaultDelay
	}
	p.delay = d
}

// Faster shortens the delay by DelayStep unless it is already at MinDelay.
func (p *Pacer) Faster() {
	if p.delay > MinDelay {
		p.delay -= DelayStep
	}
	if p.delay < MinDelay {
		p.delay = MinDelay
	}
}

// Slower lengthens the delay by DelayStep.
func (p *Pacer) Slower() { p.delay += DelayStep }

// Due reports how many generations came due since the previous call. When
// the delay is shorter than the caller's frame interval several generations
// are due per frame; a stall never yields more than MaxCatchUp.
func (p *Pacer) Due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := int(p.accumulator / p.delay)
	p.accumulator %= p.delay
	return min(n, MaxCatchUp)
}
