// Package clock implements the driver's monotone simulated game clock.
package clock

import "time"

// Clock is a monotone in-game clock that advances relative to wall-clock
// time at a fixed scaling factor. Now is computed from the wall-clock
// instant it is given, so its results never decrease as long as callers
// pass non-decreasing wall-clock instants.
type Clock struct {
	scale   float64
	epoch   time.Time // wall-clock instant the clock was created/reset
	base    time.Time // in-game instant at epoch
	elapsed time.Duration
}

// New creates a clock starting at gameStart, advancing at scale game-seconds
// per real second (scale == 1 means real time, scale == 60 means one real
// second is one game minute).
func New(gameStart time.Time, scale float64, wallNow time.Time) *Clock {
	if scale <= 0 {
		scale = 1
	}
	return &Clock{scale: scale, epoch: wallNow, base: gameStart}
}

// Now returns the current in-game time given the current wall-clock instant.
func (c *Clock) Now(wallNow time.Time) time.Time {
	real := wallNow.Sub(c.epoch)
	game := time.Duration(float64(real) * c.scale)
	return c.base.Add(game)
}

// ToGameDuration converts a real-time duration into the equivalent
// in-game duration at the clock's current scale.
func (c *Clock) ToGameDuration(real time.Duration) time.Duration {
	return time.Duration(float64(real) * c.scale)
}

// ToRealDuration converts an in-game duration into the real-time duration
// that must elapse for it to pass, at the clock's current scale.
func (c *Clock) ToRealDuration(game time.Duration) time.Duration {
	if c.scale == 0 {
		return 0
	}
	return time.Duration(float64(game) / c.scale)
}

// Scale reports the clock's current real-to-game scaling factor.
func (c *Clock) Scale() float64 { return c.scale }

// SetScale adjusts the scaling factor, rebasing the clock so that the
// in-game instant at the moment of the change doesn't jump.
func (c *Clock) SetScale(scale float64, wallNow time.Time) {
	if scale <= 0 {
		scale = 1
	}
	c.base = c.Now(wallNow)
	c.epoch = wallNow
	c.scale = scale
}
