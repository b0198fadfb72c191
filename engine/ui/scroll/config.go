package scroll

import (
	"errors"
	"fmt"
)

// FixedTickRate is the cadence, in Hz, at which hosts are expected to call
// FixedTick. Friction is applied per fixed tick, so changing the cadence
// changes how quickly a fling decays.
const FixedTickRate = 10

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("scroll: invalid config")

// Config holds the tunables of a scroll viewport. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// OverflowRate is the fraction of the viewport that content may be
	// pulled past either end while dragging or coasting.
	OverflowRate float64 `toml:"overflow_rate"`
	// FrictionRate multiplies the velocity on every fixed tick.
	FrictionRate float64 `toml:"friction_rate"`
	// ReleaseGain scales the release velocity of a content drag.
	ReleaseGain float64 `toml:"release_gain"`
	// MinThumbSize is the smallest thumb extent, in content units.
	MinThumbSize float64 `toml:"min_thumb_size"`
	// WheelDivisor sets the wheel step to viewport/WheelDivisor per notch.
	WheelDivisor float64 `toml:"wheel_divisor"`
	// VelocityFloor is the speed, in units/second, at or below which
	// coasting stops.
	VelocityFloor float64 `toml:"velocity_floor"`
	// SnapEpsilon is the distance below which snap-back lands exactly on
	// the bound.
	SnapEpsilon float64 `toml:"snap_epsilon"`
	// SnapRate is the per-second easing rate of snap-back.
	SnapRate float64 `toml:"snap_rate"`

	Autohide bool `toml:"autohide"`
	// AutohideDelay is the idle time, in seconds, before the thumb starts
	// fading.
	AutohideDelay float64 `toml:"autohide_delay"`
	// FadeFactor multiplies the thumb opacity every frame once faded.
	FadeFactor float64 `toml:"fade_factor"`

	// ThumbThickness is the fixed cross-axis extent of a thumb. It is not
	// used by the scroll math; renderers read it.
	ThumbThickness float64 `toml:"thumb_thickness"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		OverflowRate:   0.1,
		FrictionRate:   0.75,
		ReleaseGain:    1.1,
		MinThumbSize:   10,
		WheelDivisor:   16,
		VelocityFloor:  1.0,
		SnapEpsilon:    0.1,
		SnapRate:       10,
		Autohide:       false,
		AutohideDelay:  1.0,
		FadeFactor:     0.9,
		ThumbThickness: 10,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case !(c.OverflowRate >= 0):
		return fmt.Errorf("%w: overflow_rate %v is negative", ErrInvalidConfig, c.OverflowRate)
	case !(c.FrictionRate >= 0 && c.FrictionRate < 1):
		return fmt.Errorf("%w: friction_rate %v outside [0, 1)", ErrInvalidConfig, c.FrictionRate)
	case !(c.ReleaseGain >= 0):
		return fmt.Errorf("%w: release_gain %v is negative", ErrInvalidConfig, c.ReleaseGain)
	case !(c.MinThumbSize >= 0):
		return fmt.Errorf("%w: min_thumb_size %v is negative", ErrInvalidConfig, c.MinThumbSize)
	case !(c.WheelDivisor > 0):
		return fmt.Errorf("%w: wheel_divisor %v must be positive", ErrInvalidConfig, c.WheelDivisor)
	case !(c.VelocityFloor >= 0):
		return fmt.Errorf("%w: velocity_floor %v is negative", ErrInvalidConfig, c.VelocityFloor)
	case !(c.SnapEpsilon > 0):
		return fmt.Errorf("%w: snap_epsilon %v must be positive", ErrInvalidConfig, c.SnapEpsilon)
	case !(c.SnapRate > 0):
		return fmt.Errorf("%w: snap_rate %v must be positive", ErrInvalidConfig, c.SnapRate)
	case !(c.AutohideDelay >= 0):
		return fmt.Errorf("%w: autohide_delay %v is negative", ErrInvalidConfig, c.AutohideDelay)
	case !(c.FadeFactor >= 0 && c.FadeFactor <= 1):
		return fmt.Errorf("%w: fade_factor %v outside [0, 1]", ErrInvalidConfig, c.FadeFactor)
	case !(c.ThumbThickness >= 0):
		return fmt.Errorf("%w: thumb_thickness %v is negative", ErrInvalidConfig, c.ThumbThickness)
	}
	return nil
}
