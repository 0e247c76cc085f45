// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"fmt"

	"github.com/jemjive/skyline/skyline"
)

// Mode is a bitmask of façade behaviour flags, mirroring the original
// SkylineLU's setMode/getMode.
type Mode uint8

const (
	// ModeLenient downgrades SingularMatrix to an info-level signal
	// (Info.SolverFailed) instead of returning an error from Solve.
	ModeLenient Mode = 1 << iota
	// ModePrecon asks Improve to apply a diagonal preconditioning step
	// before each refinement step. No external preconditioner is in
	// scope here, so this is an extension point: Improve accepts the
	// flag and is a safe no-op beyond ordinary refinement until a
	// preconditioner is wired in.
	ModePrecon
)

// Config holds the façade's tunable parameters, addressable both through
// typed fields and through the flat configure/getConfig string map.
type Config struct {
	ZeroThreshold            float64
	MaxZeroPivots            int
	Precision                float64
	PrintInterval            int
	Mode                     Mode
	ReorderMethod            skyline.ReorderMethod
	ProfileFallbackThreshold float64
}

// DefaultConfig returns the configuration defaults from spec section 6.
func DefaultConfig() Config {
	return Config{
		ZeroThreshold:            1e-15,
		MaxZeroPivots:            0,
		Precision:                1e-6,
		PrintInterval:            1000,
		Mode:                     0,
		ReorderMethod:            skyline.ReorderRCM,
		ProfileFallbackThreshold: 0.35,
	}
}

// Lenient reports whether ModeLenient is set.
func (c Config) Lenient() bool { return c.Mode&ModeLenient != 0 }

// Precon reports whether ModePrecon is set.
func (c Config) Precon() bool { return c.Mode&ModePrecon != 0 }

// Configure applies string-keyed options over c, per spec section 6's
// table. Unknown keys or values of the wrong type return an error rather
// than being silently ignored.
func (c *Config) Configure(props map[string]any) error {
	for key, val := range props {
		var err error
		switch key {
		case "zeroThreshold":
			c.ZeroThreshold, err = asFloat(key, val)
		case "maxZeroPivots":
			c.MaxZeroPivots, err = asInt(key, val)
		case "precision":
			c.Precision, err = asFloat(key, val)
		case "printInterval":
			c.PrintInterval, err = asInt(key, val)
		case "lenient":
			var b bool
			b, err = asBool(key, val)
			if b {
				c.Mode |= ModeLenient
			} else {
				c.Mode &^= ModeLenient
			}
		case "precon":
			var b bool
			b, err = asBool(key, val)
			if b {
				c.Mode |= ModePrecon
			} else {
				c.Mode &^= ModePrecon
			}
		case "reorderMethod":
			s, ok := val.(string)
			if !ok {
				err = fmt.Errorf("solver: option %q must be a string", key)
				break
			}
			switch s {
			case "rcm":
				c.ReorderMethod = skyline.ReorderRCM
			case "none":
				c.ReorderMethod = skyline.ReorderNone
			default:
				err = fmt.Errorf("solver: unknown reorderMethod %q", s)
			}
		case "profileFallbackThreshold":
			c.ProfileFallbackThreshold, err = asFloat(key, val)
		default:
			err = fmt.Errorf("solver: unknown configuration key %q", key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// GetConfig returns c as a flat string-keyed map, the inverse of Configure.
func (c Config) GetConfig() map[string]any {
	reorder := "rcm"
	if c.ReorderMethod == skyline.ReorderNone {
		reorder = "none"
	}
	return map[string]any{
		"zeroThreshold":            c.ZeroThreshold,
		"maxZeroPivots":            c.MaxZeroPivots,
		"precision":                c.Precision,
		"printInterval":            c.PrintInterval,
		"lenient":                  c.Lenient(),
		"precon":                   c.Precon(),
		"reorderMethod":            reorder,
		"profileFallbackThreshold": c.ProfileFallbackThreshold,
	}
}

func asFloat(key string, val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("solver: option %q must be a number", key)
	}
}

func asInt(key string, val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("solver: option %q must be an integer", key)
	}
}

func asBool(key string, val any) (bool, error) {
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("solver: option %q must be a bool", key)
	}
	return b, nil
}
