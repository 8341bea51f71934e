package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the invariants the simulation depends on. In particular a
// valid config guarantees that every gap the spawner can draw fits inside the
// playfield with the configured margins.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	pf, ph, pl, ob := c.Playfield, c.Physics, c.Player, c.Obstacles

	check(pf.Width > 0 && pf.Height > 0, "playfield must have positive size, got %vx%v", pf.Width, pf.Height)

	check(ph.Gravity > 0, "gravity must be positive, got %v", ph.Gravity)
	check(ph.MaxUpVelocity < 0, "max_up_velocity must be negative, got %v", ph.MaxUpVelocity)
	check(ph.MaxDownVelocity > 0, "max_down_velocity must be positive, got %v", ph.MaxDownVelocity)
	check(ph.FlapVelocity < 0 && ph.FlapVelocity >= ph.MaxUpVelocity,
		"flap_velocity must be in [max_up_velocity, 0), got %v", ph.FlapVelocity)
	check(ph.ScrollSpeed > 0, "scroll_speed must be positive, got %v", ph.ScrollSpeed)

	check(pl.HalfExtent > 0, "player half_extent must be positive, got %v", pl.HalfExtent)
	check(pl.StartX >= 0 && pl.StartX <= pf.Width, "player start_x %v outside playfield", pl.StartX)
	check(pl.StartY-pl.HalfExtent > 0 && pl.StartY+pl.HalfExtent < pf.Height,
		"player at start_y %v would touch the playfield boundary", pl.StartY)

	check(ob.Width > 0, "obstacle width must be positive, got %v", ob.Width)
	check(ob.MinGap > 0 && ob.MinGap <= ob.MaxGap, "gap range [%v, %v] is empty or not positive", ob.MinGap, ob.MaxGap)
	check(ob.Margin >= 0, "margin must not be negative, got %v", ob.Margin)
	check(ob.MaxGap+2*ob.Margin <= pf.Height,
		"max_gap %v plus two margins of %v does not fit a playfield of height %v", ob.MaxGap, ob.Margin, pf.Height)
	check(ob.MinInterval > 0 && ob.MinInterval <= ob.MaxInterval,
		"spawn interval range [%v, %v] is empty or not positive", ob.MinInterval, ob.MaxInterval)

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio volume must be in [0, 1], got %v", c.Audio.Volume)
	check(c.Audio.SampleRate > 0, "audio sample_rate must be positive, got %v", c.Audio.SampleRate)

	return errors.Join(errs...)
}
