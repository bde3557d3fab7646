package tips

import (
	"context"
	"math/rand/v2"
	"time"
)

// IntN returns a uniformly distributed integer in [0, n)
type IntN func(n int) int

// Rotator cycles through a fixed list of tips.
// It is not safe for concurrent use; the owning view serializes access.
type Rotator struct {
	tips  []string
	index int
}

// NewRotator copies tips and starts at a random position chosen with intn.
// A nil intn uses math/rand/v2.
func NewRotator(tips []string, intn IntN) *Rotator {
	if intn == nil {
		intn = rand.IntN
	}

	r := &Rotator{tips: make([]string, len(tips))}
	copy(r.tips, tips)

	if len(r.tips) > 0 {
		r.index = intn(len(r.tips))
	}
	return r
}

// Len returns the number of tips
func (r *Rotator) Len() int { return len(r.tips) }

// Index returns the position of the current tip
func (r *Rotator) Index() int { return r.index }

// Current returns the tip being shown, or "" when there are none
func (r *Rotator) Current() string {
	if len(r.tips) == 0 {
		return ""
	}
	return r.tips[r.index]
}

// Tips returns a copy of the tip list
func (r *Rotator) Tips() []string {
	out := make([]string, len(r.tips))
	copy(out, r.tips)
	return out
}

// Advance moves to the next tip, wrapping at the end
func (r *Rotator) Advance() {
	if len(r.tips) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.tips)
}

// Run advances r every interval and reports each new tip until ctx is done.
// It returns immediately when there is nothing to rotate.
func Run(ctx context.Context, interval time.Duration, r *Rotator, onTick func(index int, tip string)) error {
	if r.Len() == 0 {
		return nil
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// a tick racing with cancellation must not advance
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.Advance()
			if onTick != nil {
				onTick(r.Index(), r.Current())
			}
		}
	}
}
