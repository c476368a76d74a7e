// This file is part of microcode6502.
//
// microcode6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// microcode6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with microcode6502.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(1000)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		mc.Step()
//	}
//
// A rate of zero means unlimited. Wait() will never block.
package limiter

import (
	"time"
)

// Limiter triggers at a fixed number of events per second.
type Limiter struct {
	rate   int
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(perSecond int) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(perSecond)
	return lim
}

// SetLimit changes the number of events per second. A value of zero or less
// removes the limit.
func (lim *Limiter) SetLimit(perSecond int) {
	lim.Stop()
	if perSecond <= 0 {
		lim.rate = 0
		return
	}
	lim.rate = perSecond

	// rates above one per nanosecond are clamped to the shortest interval
	// the ticker accepts
	interval := time.Second / time.Duration(perSecond)
	if interval < time.Nanosecond {
		interval = time.Nanosecond
	}
	lim.ticker = time.NewTicker(interval)
}

// Limit returns the current number of events per second. Zero means
// unlimited.
func (lim *Limiter) Limit() int {
	return lim.rate
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	if lim.ticker == nil {
		return
	}
	<-lim.ticker.C
}

// HasWaited returns true if the trigger has already happened, without
// blocking.
func (lim *Limiter) HasWaited() bool {
	if lim.ticker == nil {
		return true
	}
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. It is safe to call Stop() more than once.
func (lim *Limiter) Stop() {
	if lim.ticker != nil {
		lim.ticker.Stop()
		lim.ticker = nil
	}
}
