package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative overflow", func(c *Config) { c.OverflowRate = -0.1 }, "overflow_rate"},
		{"friction one", func(c *Config) { c.FrictionRate = 1 }, "friction_rate"},
		{"friction nan", func(c *Config) { c.FrictionRate = math.NaN() }, "friction_rate"},
		{"negative gain", func(c *Config) { c.ReleaseGain = -1 }, "release_gain"},
		{"negative thumb", func(c *Config) { c.MinThumbSize = -1 }, "min_thumb_size"},
		{"zero wheel divisor", func(c *Config) { c.WheelDivisor = 0 }, "wheel_divisor"},
		{"negative floor", func(c *Config) { c.VelocityFloor = -1 }, "velocity_floor"},
		{"zero snap epsilon", func(c *Config) { c.SnapEpsilon = 0 }, "snap_epsilon"},
		{"zero snap rate", func(c *Config) { c.SnapRate = 0 }, "snap_rate"},
		{"negative delay", func(c *Config) { c.AutohideDelay = -1 }, "autohide_delay"},
		{"fade above one", func(c *Config) { c.FadeFactor = 1.5 }, "fade_factor"},
		{"negative thickness", func(c *Config) { c.ThumbThickness = -2 }, "thumb_thickness"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tc.field)
		})
	}
}

func TestConfigFrictionZeroStopsImmediately(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrictionRate = 0
	assert.NoError(t, cfg.Validate())

	a := NewAxis(Vertical, cfg)
	a.SetViewportSize(200)
	a.SetContentSize(1000)
	a.DragStart()
	a.DragEnd(-40, 0.1)
	a.FixedTick()
	assert.Zero(t, a.Velocity())
}
